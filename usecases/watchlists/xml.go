package watchlists

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/html/charset"

	"github.com/vigiehq/vigie-backend/models"
)

// xmlNode is a schema-free view of one element. Watchlist publishers do not
// share a schema, so documents are decoded into this generic tree first and
// interpreted per format afterwards.
type xmlNode struct {
	local    string
	space    string
	attrs    []xml.Attr
	text     string
	children []*xmlNode
}

func (n *xmlNode) attr(local string) string {
	for _, a := range n.attrs {
		if a.Name.Local == local {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}

func (n *xmlNode) trimmedText() string {
	return strings.TrimSpace(n.text)
}

// walk visits the node and every descendant in document order.
func (n *xmlNode) walk(visit func(*xmlNode)) {
	visit(n)
	for _, child := range n.children {
		child.walk(visit)
	}
}

// all returns the node and its descendants carrying the given local name,
// in document order.
func (n *xmlNode) all(local string) []*xmlNode {
	var nodes []*xmlNode
	n.walk(func(node *xmlNode) {
		if node.local == local {
			nodes = append(nodes, node)
		}
	})
	return nodes
}

func (n *xmlNode) firstText(local string) string {
	for _, node := range n.all(local) {
		if t := node.trimmedText(); t != "" {
			return t
		}
	}
	return ""
}

func (n *xmlNode) child(local string) *xmlNode {
	for _, c := range n.children {
		if c.local == local {
			return c
		}
	}
	return nil
}

func (n *xmlNode) childText(local string) string {
	if c := n.child(local); c != nil {
		return c.trimmedText()
	}
	return ""
}

// decodeXmlTree parses raw bytes into an xmlNode tree. A strict pass runs
// first; documents the strict decoder rejects get a second, lenient pass,
// because published watchlist files are regularly malformed in small ways
// (unescaped ampersands, stray end tags).
func decodeXmlTree(data []byte) (*xmlNode, error) {
	root, err := decodeXmlTreeWith(data, true)
	if err == nil {
		return root, nil
	}
	root, lenientErr := decodeXmlTreeWith(data, false)
	if lenientErr != nil {
		return nil, errors.Wrap(models.ErrDocumentUnreadable, err.Error())
	}
	return root, nil
}

func decodeXmlTreeWith(data []byte, strict bool) (*xmlNode, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Strict = strict

	var (
		root  *xmlNode
		stack []*xmlNode
	)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &xmlNode{
				local: t.Name.Local,
				space: t.Name.Space,
				attrs: t.Copy().Attr,
			}
			if len(stack) == 0 {
				if root == nil {
					root = node
				}
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("document contains no elements")
	}
	return root, nil
}

const (
	euNamespaceMarker   = "eu.europa.ec/fpi/fsd/export"
	ofacNamespaceMarker = "sanctionslistservice.ofac.treas.gov"
)

// detectListType classifies a document by its structure. Publishers rename
// and re-export files freely, so filenames mean nothing; namespaces and
// structural markers are what identify a format. Namespace checks win over
// structural ones.
func detectListType(root *xmlNode) models.ListType {
	var (
		euNamespace       bool
		ofacNamespace     bool
		sanctionEntity    bool
		entitiesWithChild bool
		sdnEntry          bool
		name6             bool
		entityShipMarker  bool
		individualRecord  bool
		designation       bool
	)

	root.walk(func(n *xmlNode) {
		if strings.Contains(n.space, euNamespaceMarker) {
			euNamespace = true
		}
		if strings.Contains(n.space, ofacNamespaceMarker) {
			ofacNamespace = true
		}
		switch n.local {
		case "sanctionEntity":
			sanctionEntity = true
		case "entities":
			if n.child("entity") != nil {
				entitiesWithChild = true
			}
		case "sdnEntry":
			sdnEntry = true
		case "Name6":
			name6 = true
		case "IndividualEntityShip":
			entityShipMarker = true
		case "INDIVIDUAL":
			if n.child("FIRST_NAME") != nil {
				individualRecord = true
			}
		case "Designation":
			designation = true
		}
	})

	switch {
	case euNamespace:
		return models.ListTypeEU
	case ofacNamespace:
		return models.ListTypeOFAC
	case sanctionEntity:
		return models.ListTypeEU
	case root.local == "sanctionsData",
		root.local == "sdnList",
		entitiesWithChild,
		sdnEntry:
		return models.ListTypeOFAC
	case name6 && entityShipMarker:
		return models.ListTypeUN
	case root.local == "CONSOLIDATED_LIST", individualRecord:
		return models.ListTypeUN
	case root.local == "Designations", designation:
		return models.ListTypeUK
	}
	return models.ListTypeGeneric
}
