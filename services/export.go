package services

import (
	"encoding/xml"
	"fmt"
	"time"

	"agorahub/models"
)

// DebateExport is the XML document for a single debate and its arguments.
type DebateExport struct {
	XMLName     xml.Name         `xml:"debate"`
	ID          string           `xml:"id,attr"`
	Topic       string           `xml:"topic"`
	Description string           `xml:"description,omitempty"`
	Creator     string           `xml:"creator"`
	CreatedAt   string           `xml:"createdAt"`
	Arguments   []ArgumentExport `xml:"arguments>argument"`
}

// ArgumentExport is one argument element inside a DebateExport.
type ArgumentExport struct {
	Side      string `xml:"side,attr"`
	Author    string `xml:"author,attr"`
	CreatedAt string `xml:"createdAt,attr"`
	Text      string `xml:",chardata"`
}

// BuildDebateExport assembles the export document from a debate and its
// arguments. The scorer is not involved; the export carries the raw records.
func BuildDebateExport(debate models.Debate, arguments []models.Argument) DebateExport {
	export := DebateExport{
		ID:          debate.ID.Hex(),
		Topic:       debate.Topic,
		Description: debate.Description,
		Creator:     debate.CreatorName,
		CreatedAt:   debate.CreatedAt.UTC().Format(time.RFC3339),
		Arguments:   make([]ArgumentExport, 0, len(arguments)),
	}

	for _, arg := range arguments {
		export.Arguments = append(export.Arguments, ArgumentExport{
			Side:      string(arg.Side),
			Author:    arg.AuthorName,
			CreatedAt: arg.CreatedAt.UTC().Format(time.RFC3339),
			Text:      arg.Text,
		})
	}

	return export
}

// MarshalDebateExport renders the document with the standard XML header.
// encoding/xml escapes &, <, >, " and ' in both content and attributes.
func MarshalDebateExport(export DebateExport) ([]byte, error) {
	body, err := xml.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal debate export: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
