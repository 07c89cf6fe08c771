// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

// this file contains all the IO-related parsing etc routines

var (
	errNoRoot       = errors.New("svg: document has no root element")
	errMultipleRoot = errors.New("svg: document has more than one root element")
)

// Document is a parsed SVG (or any XML) document: the root element
// together with the items before and after it.
type Document struct {

	// Prolog are the items before the root element:
	// the XML declaration, comments, doctype and whitespace.
	Prolog []*Node

	// Root is the root element.
	Root *Node

	// Epilog are the items after the root element.
	Epilog []*Node
}

// OpenXML opens the XML-formatted SVG document in the given file.
func OpenXML(fname string) (*Document, error) {
	fi, err := os.Stat(fname)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("svg.OpenXML: file is a directory: %v", fname)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	doc, err := ReadXML(bufio.NewReader(fp))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return doc, nil
}

// ReadXML reads an XML-formatted SVG document from the given reader.
// Names are kept as written (see [Node]); the declared encoding is
// honored through [charset.NewReaderLabel].
func ReadXML(reader io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(reader)
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	doc := &Document{}
	var cur *Node
	for {
		t, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("SVG parsing error: %w", err)
		}
		t = xml.CopyToken(t)
		switch se := t.(type) {
		case xml.StartElement:
			n := &Node{Name: se.Name, Attr: se.Attr}
			if cur != nil {
				cur.AddChild(n)
			} else if doc.Root == nil {
				doc.Root = n
			} else {
				return nil, errMultipleRoot
			}
			cur = n
		case xml.EndElement:
			if cur == nil || cur.Name != se.Name {
				return nil, fmt.Errorf("SVG parsing error: unexpected end element </%s>", qualified(se.Name))
			}
			cur = cur.Parent
		default:
			n := &Node{Token: t}
			switch {
			case cur != nil:
				cur.AddChild(n)
			case doc.Root == nil:
				doc.Prolog = append(doc.Prolog, n)
			default:
				doc.Epilog = append(doc.Epilog, n)
			}
		}
	}
	if doc.Root == nil {
		return nil, errNoRoot
	}
	if cur != nil {
		return nil, fmt.Errorf("SVG parsing error: element <%s> is not closed", cur.QName())
	}
	return doc, nil
}

// SaveXML saves the document to the given file, using [Document.WriteXML].
func (d *Document) SaveXML(fname string) error {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = d.WriteXML(fp)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteXML writes the document as UTF-8 encoded XML to the given writer.
func (d *Document) WriteXML(wr io.Writer) error {
	bw := bufio.NewWriter(wr)
	for _, n := range d.Prolog {
		writeNode(bw, n)
	}
	writeNode(bw, d.Root)
	for _, n := range d.Epilog {
		writeNode(bw, n)
	}
	return bw.Flush()
}

// WriteNode writes the given node and its children as XML.
func WriteNode(wr io.Writer, n *Node) error {
	bw := bufio.NewWriter(wr)
	writeNode(bw, n)
	return bw.Flush()
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\n", "&#10;", "\r", "&#13;", "\t", "&#9;")
	encodingDecl = regexp.MustCompile(`encoding\s*=\s*("[^"]*"|'[^']*')`)
)

func writeNode(bw *bufio.Writer, n *Node) {
	switch t := n.Token.(type) {
	case nil:
	case xml.CharData:
		textEscaper.WriteString(bw, string(t))
		return
	case xml.Comment:
		bw.WriteString("<!--")
		bw.Write(t)
		bw.WriteString("-->")
		return
	case xml.ProcInst:
		inst := string(t.Inst)
		if t.Target == "xml" {
			// output is always written as UTF-8
			inst = encodingDecl.ReplaceAllString(inst, `encoding="UTF-8"`)
		}
		bw.WriteString("<?" + t.Target)
		if inst != "" {
			bw.WriteString(" " + inst)
		}
		bw.WriteString("?>")
		return
	case xml.Directive:
		bw.WriteString("<!")
		bw.Write(t)
		bw.WriteString(">")
		return
	default:
		return
	}
	name := n.QName()
	bw.WriteString("<" + name)
	for _, a := range n.Attr {
		bw.WriteString(" " + qualified(a.Name) + `="`)
		attrEscaper.WriteString(bw, a.Value)
		bw.WriteString(`"`)
	}
	if len(n.Children) == 0 {
		bw.WriteString("/>")
		return
	}
	bw.WriteString(">")
	for _, c := range n.Children {
		writeNode(bw, c)
	}
	bw.WriteString("</" + name + ">")
}
