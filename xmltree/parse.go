package xmltree

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

var (
	ErrNoRoot        = errors.New("xmltree: document has no root element")
	ErrMultipleRoots = errors.New("xmltree: document has more than one root element")
)

// utf8BOM is the UTF-8 encoding of U+FEFF.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse decodes a whole XML document read as bytes. A document declaring a charset
// other than UTF-8 is decoded through that charset. The returned tree has exactly one
// entry: the root element.
func Parse(r io.Reader) (*Tree, error) {
	return parse(r, charsetReader)
}

// ParseString decodes a document that is already text. The string is read as UTF-8
// whatever encoding the XML declaration names.
func ParseString(s string) (*Tree, error) {
	return parse(strings.NewReader(s), keepUTF8)
}

func parse(r io.Reader, charset func(string, io.Reader) (io.Reader, error)) (*Tree, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	d := xml.NewDecoder(br)
	d.Strict = true
	d.CharsetReader = charset

	doc := NewTree()
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if doc.Len() > 0 {
				return nil, ErrMultipleRoots
			}
			v, err := decodeElement(d, t)
			if err != nil {
				return nil, err
			}
			doc.Add(ElementKey(t.Name.Local), v)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				line, _ := d.InputPos()
				return nil, fmt.Errorf("xmltree: text outside root element at line %d", line)
			}
		}
	}
	if doc.Len() == 0 {
		return nil, ErrNoRoot
	}
	return doc, nil
}

func decodeElement(d *xml.Decoder, start xml.StartElement) (Value, error) {
	node := NewTree()
	for _, a := range start.Attr {
		node.Add(AttributeKey(attrName(a.Name)), StringValue(a.Value))
	}

	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return Value{}, fmt.Errorf("xmltree: unexpected EOF inside <%s>", start.Name.Local)
			}
			return Value{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(d, t)
			if err != nil {
				return Value{}, err
			}
			node.Add(ElementKey(t.Name.Local), child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			return finishElement(node, strings.TrimSpace(text.String())), nil
		}
	}
}

func finishElement(node *Tree, text string) Value {
	if node.Len() == 0 {
		if text == "" {
			return NullValue()
		}
		return StringValue(text)
	}
	if text != "" {
		node.Add(Key{Name: TextName, Role: Text}, StringValue(text))
	}
	return TreeValue(node)
}

// xmlNamespace is the namespace bound to the reserved "xml" prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// attrName keeps namespace declarations and xml: attributes (xml:lang, xml:space)
// recognisable; other attributes use their local name.
func attrName(n xml.Name) string {
	switch n.Space {
	case "xmlns":
		return "xmlns:" + n.Local
	case xmlNamespace, "xml":
		return "xml:" + n.Local
	}
	return n.Local
}

// keepUTF8 ignores the declared charset of documents that are already text.
func keepUTF8(_ string, input io.Reader) (io.Reader, error) {
	return input, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("xmltree: unsupported charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("xmltree: unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
