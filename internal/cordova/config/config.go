// Package config reads and writes the cordova config.xml startup
// descriptor. The native tool reads this document synchronously, so every
// mutation must be saved before cordova is invoked.
//
// config.xml is open-schema: plugins, icons, platform sections, and
// arbitrary preferences live alongside the elements this package touches.
// The document is therefore edited in place rather than re-marshaled, so
// everything not modeled here survives a save byte-for-byte.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
)

// FileName is the cordova descriptor at the project root.
const FileName = "config.xml"

// DefaultContentSrc is the packaged startup page cordova falls back to.
const DefaultContentSrc = "index.html"

// originalSrcAttr remembers the packaged src across a live-reload rewrite.
const originalSrcAttr = "original-src"

// Doc is a loaded config.xml.
type Doc struct {
	path string
	tree *etree.Document
	root *etree.Element
}

// Load parses config.xml from projectDir.
func Load(projectDir string) (*Doc, error) {
	path := filepath.Join(projectDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	root := tree.Root()
	if root == nil || root.Tag != "widget" {
		return nil, fmt.Errorf("parse %s: missing widget root element", FileName)
	}
	return &Doc{path: path, tree: tree, root: root}, nil
}

// Platforms lists the platform engines registered in the document.
func (d *Doc) Platforms() []string {
	engines := d.root.SelectElements("engine")
	names := make([]string, 0, len(engines))
	for _, e := range engines {
		if name := e.SelectAttrValue("name", ""); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// content returns the <content> element, creating it if the document has
// none yet.
func (d *Doc) content() *etree.Element {
	if el := d.root.SelectElement("content"); el != nil {
		return el
	}
	return d.root.CreateElement("content")
}

// ContentSrc returns the current content-source value.
func (d *Doc) ContentSrc() string {
	return d.content().SelectAttrValue("src", "")
}

// SetContentSrc points the app's startup content at url, remembering the
// packaged value so a later reset can restore it.
func (d *Doc) SetContentSrc(url string) {
	el := d.content()
	src := el.SelectAttrValue("src", "")
	if el.SelectAttr(originalSrcAttr) == nil && src != "" && src != url {
		el.CreateAttr(originalSrcAttr, src)
	}
	el.CreateAttr("src", url)
}

// ResetContentSrc restores the packaged startup page. Calling it on an
// already-reset document is a no-op that persists to the same bytes.
func (d *Doc) ResetContentSrc() {
	el := d.content()
	if orig := el.SelectAttr(originalSrcAttr); orig != nil {
		el.CreateAttr("src", orig.Value)
		el.RemoveAttr(originalSrcAttr)
	}
	if el.SelectAttrValue("src", "") == "" {
		el.CreateAttr("src", DefaultContentSrc)
	}
}

// Save writes the document back to disk.
func (d *Doc) Save() error {
	data, err := d.tree.WriteToBytes()
	if err != nil {
		return fmt.Errorf("marshal %s: %w", FileName, err)
	}
	if err := os.WriteFile(d.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", FileName, err)
	}
	return nil
}
