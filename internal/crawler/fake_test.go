package crawler

import (
	"fmt"
	"time"

	"go-linkedin-jobhunter/internal/browser"
)

//in-memory page for pipeline tests: one DOM per URL, selectors mapped
//straight to elements

type fakeElement struct {
	text    string
	textErr error
	attrs   map[string]string
	typed   string
	clicked int
	onClick func() error
}

func (e *fakeElement) Text() (string, error) {
	if e.textErr != nil {
		return "", e.textErr
	}
	return e.text, nil
}

func (e *fakeElement) Attribute(name string) (string, error) {
	return e.attrs[name], nil
}

func (e *fakeElement) Click() error {
	e.clicked++
	if e.onClick != nil {
		return e.onClick()
	}
	return nil
}

func (e *fakeElement) TypeText(text string) error {
	e.typed = text
	return nil
}

type fakeDOM map[string][]*fakeElement

type fakePage struct {
	doms    map[string]fakeDOM
	current fakeDOM
	visited []string
	navErr  map[string]error
	closed  bool
}

func newFakePage() *fakePage {
	return &fakePage{
		doms:    make(map[string]fakeDOM),
		current: fakeDOM{},
		navErr:  make(map[string]error),
	}
}

func (p *fakePage) Navigate(url string) error {
	if err := p.navErr[url]; err != nil {
		return err
	}
	p.visited = append(p.visited, url)
	if dom, ok := p.doms[url]; ok {
		p.current = dom
	} else {
		p.current = fakeDOM{}
	}
	return nil
}

func (p *fakePage) Find(selector string) (browser.Element, error) {
	els := p.current[selector]
	if len(els) == 0 {
		return nil, fmt.Errorf("%w: %s", browser.ErrNotFound, selector)
	}
	return els[0], nil
}

func (p *fakePage) FindAll(selector string) ([]browser.Element, error) {
	els := p.current[selector]
	out := make([]browser.Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out, nil
}

func (p *fakePage) WaitVisible(selector string, max time.Duration) error {
	if len(p.current[selector]) == 0 {
		return fmt.Errorf("timed out waiting for %s", selector)
	}
	return nil
}

func (p *fakePage) Close() error {
	p.closed = true
	return nil
}

//builders

func jobCard(id string) *fakeElement {
	return &fakeElement{attrs: map[string]string{attrJobID: id}}
}

func textEl(text string) *fakeElement {
	return &fakeElement{text: text}
}

func loginDOM(authenticated bool) fakeDOM {
	dom := fakeDOM{
		selEmailInput:    {&fakeElement{}},
		selPasswordInput: {&fakeElement{}},
		selLoginSubmit:   {&fakeElement{}},
	}
	if authenticated {
		dom[selGlobalNav] = []*fakeElement{{}}
	}
	return dom
}

func detailDOM(title, company, description, location string) fakeDOM {
	dom := fakeDOM{}
	if title != "" {
		dom[selJobTitle] = []*fakeElement{textEl(title)}
	}
	if company != "" {
		dom[selCompanyName] = []*fakeElement{textEl(company)}
	}
	if description != "" {
		dom[selDescription] = []*fakeElement{textEl(description)}
	}
	if location != "" {
		dom[selLocation] = []*fakeElement{textEl(location)}
	}
	return dom
}

func searchURL(keyword, token, geoID string) string {
	return fmt.Sprintf("%s?keywords=%s&f_TPR=%s&geoId=%s", jobsSearchURL, keyword, token, geoID)
}

func detailURL(jobID string) string {
	return fmt.Sprintf("%s/?currentJobId=%s", jobsSearchURL, jobID)
}
