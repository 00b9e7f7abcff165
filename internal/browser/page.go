package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ErrNotFound is returned by Find when no element matches the selector.
var ErrNotFound = errors.New("element not found")

// Page is the browsing surface the crawl pipeline drives. It hides the
// playwright types so the pipeline can run against a fake in tests.
type Page interface {
	//Navigate loads the URL and returns once the DOM is ready
	Navigate(url string) error
	//Find returns the first element matching the selector, or ErrNotFound
	Find(selector string) (Element, error)
	//FindAll returns every element matching the selector
	FindAll(selector string) ([]Element, error)
	//WaitVisible blocks until the selector is attached, up to max
	WaitVisible(selector string, max time.Duration) error
	Close() error
}

type Element interface {
	Text() (string, error)
	Attribute(name string) (string, error)
	Click() error
	TypeText(text string) error
}

const navigationTimeoutMs = 30000

type playwrightPage struct {
	page playwright.Page
}

// WrapPage adapts a playwright page to the Page interface.
func WrapPage(page playwright.Page) Page {
	return &playwrightPage{page: page}
}

func (p *playwrightPage) Navigate(url string) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(navigationTimeoutMs),
	})
	return err
}

func (p *playwrightPage) Find(selector string) (Element, error) {
	loc := p.page.Locator(selector).First()
	count, err := loc.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return &playwrightElement{loc: loc}, nil
}

func (p *playwrightPage) FindAll(selector string) ([]Element, error) {
	locs, err := p.page.Locator(selector).All()
	if err != nil {
		return nil, err
	}
	elements := make([]Element, len(locs))
	for i, loc := range locs {
		elements[i] = &playwrightElement{loc: loc}
	}
	return elements, nil
}

func (p *playwrightPage) WaitVisible(selector string, max time.Duration) error {
	_, err := p.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(max.Milliseconds())),
	})
	return err
}

func (p *playwrightPage) Close() error {
	return p.page.Close()
}

type playwrightElement struct {
	loc playwright.Locator
}

func (e *playwrightElement) Text() (string, error) {
	return e.loc.InnerText()
}

func (e *playwrightElement) Attribute(name string) (string, error) {
	return e.loc.GetAttribute(name)
}

func (e *playwrightElement) Click() error {
	return e.loc.Click()
}

func (e *playwrightElement) TypeText(text string) error {
	return e.loc.Fill(text)
}
