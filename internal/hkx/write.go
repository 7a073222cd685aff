package hkx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// header is the fixed XML declaration the runtime expects at the top of
// every packfile.
const header = "<?xml version='1.0' encoding='ascii'?>\n"

// Write renders the tree rooted at root to w. Output is deterministic:
// identical trees always produce identical bytes.
func Write(w io.Writer, root *Element) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(header); err != nil {
		return err
	}
	writeElement(bw, root, 0)
	return bw.Flush()
}

// Save writes the tree to path atomically: the document is rendered to a
// uniquely named temp file in the destination directory, flushed, closed,
// and renamed over the destination. The temp file is removed on every
// failure path.
func Save(path string, root *Element) (err error) {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temp output file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err = Write(f, root); err != nil {
		f.Close()
		return fmt.Errorf("failed to write packfile: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close temp output file: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to move packfile into place: %w", err)
	}
	return nil
}

// writeElement emits one element and its subtree. Siblings share an
// indentation level; a subtree's closing tag indents to its parent's depth.
func writeElement(bw *bufio.Writer, e *Element, depth int) {
	bw.WriteByte('<')
	bw.WriteString(e.Name)
	for _, a := range e.Attrs {
		bw.WriteByte(' ')
		bw.WriteString(a.Key)
		bw.WriteString(`="`)
		bw.WriteString(escapeAttr(a.Value))
		bw.WriteByte('"')
	}
	bw.WriteByte('>')

	if len(e.children) == 0 {
		// Leaf: scalar text on one line, explicit end tag even when empty.
		bw.WriteString(escapeText(e.Text))
		bw.WriteString("</")
		bw.WriteString(e.Name)
		bw.WriteByte('>')
		return
	}

	childIndent := "\n" + strings.Repeat("\t", depth+1)
	for _, c := range e.children {
		bw.WriteString(childIndent)
		switch n := c.(type) {
		case *Element:
			writeElement(bw, n, depth+1)
		case Comment:
			bw.WriteString("<!--")
			bw.WriteString(string(n))
			bw.WriteString("-->")
		}
	}
	bw.WriteString("\n")
	bw.WriteString(strings.Repeat("\t", depth))
	bw.WriteString("</")
	bw.WriteString(e.Name)
	bw.WriteByte('>')
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
