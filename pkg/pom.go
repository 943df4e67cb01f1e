package semcommit

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// PomStore keeps the project version in a Maven pom.xml. Only the <version>
// child of the root <project> element is read or written; a <parent> or
// dependency version is never touched.
type PomStore struct {
	Path string
}

func (p PomStore) Location() string {
	return p.Path
}

func (p PomStore) load() (*etree.Document, *etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(p.Path); err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", p.Path, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "project" {
		return nil, nil, fmt.Errorf("%s: root element is not <project>", p.Path)
	}
	return doc, root.SelectElement("version"), nil
}

// ReadVersion returns nil when the project has no version of its own or the
// element is empty.
func (p PomStore) ReadVersion() (*string, error) {
	_, el, err := p.load()
	if err != nil {
		return nil, err
	}
	if el == nil {
		return nil, nil
	}
	text := strings.TrimSpace(el.Text())
	if text == "" {
		return nil, nil
	}
	return &text, nil
}

// WriteVersion replaces the project version and writes the document back,
// leaving the rest of the file as it was.
func (p PomStore) WriteVersion(version string) error {
	doc, el, err := p.load()
	if err != nil {
		return err
	}
	if el == nil {
		return fmt.Errorf("%s: project has no <version> element", p.Path)
	}
	el.SetText(version)
	if err := doc.WriteToFile(p.Path); err != nil {
		return fmt.Errorf("writing %s: %w", p.Path, err)
	}
	return nil
}
