package crawler

import (
	"fmt"
	"log"

	"go-linkedin-jobhunter/internal/browser"
	"go-linkedin-jobhunter/internal/config"
)

// Login authenticates the shared browsing session. It fills the login
// form and then waits up to the long budget for the global nav to
// appear, which leaves room for a manual CAPTCHA/2FA challenge when the
// run is not headless. There is no retry here: a failed login is fatal.
func Login(page browser.Page, cfg *config.Config, logger *log.Logger) error {
	logger.Println("🔐 Attempting login")

	if err := page.Navigate(loginURL); err != nil {
		return &AuthError{Err: fmt.Errorf("loading login page: %w", err)}
	}
	if err := page.WaitVisible(selEmailInput, cfg.Waits.Medium); err != nil {
		return &AuthError{Err: fmt.Errorf("login form did not appear: %w", err)}
	}

	email, err := page.Find(selEmailInput)
	if err != nil {
		return &AuthError{Err: err}
	}
	if err := email.TypeText(cfg.Email); err != nil {
		return &AuthError{Err: fmt.Errorf("filling email: %w", err)}
	}

	password, err := page.Find(selPasswordInput)
	if err != nil {
		return &AuthError{Err: err}
	}
	if err := password.TypeText(cfg.Password); err != nil {
		return &AuthError{Err: fmt.Errorf("filling password: %w", err)}
	}

	submit, err := page.Find(selLoginSubmit)
	if err != nil {
		return &AuthError{Err: err}
	}
	if err := submit.Click(); err != nil {
		return &AuthError{Err: fmt.Errorf("submitting login: %w", err)}
	}

	//settle window for redirects and manual verification challenges
	if err := page.WaitVisible(selGlobalNav, cfg.Waits.Long); err != nil {
		return &AuthError{Err: fmt.Errorf("login verification failed - global nav not found: %w", err)}
	}

	logger.Println("✅ Login confirmed")
	return nil
}
