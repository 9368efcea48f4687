// Copyright 2024-2026 Aiku AI

package main

import (
	"encoding/json"
	"fmt"
	"html"
	"slices"

	"github.com/mattermost/mattermost/server/public/model"
	"maunium.net/go/mautrix/event"

	"github.com/aiku/chatmarkup/pkg/chatmarkup"
	"github.com/aiku/chatmarkup/pkg/connector"
)

const (
	formatMatrix     = "matrix"
	formatHTML       = "html"
	formatMattermost = "mattermost"
	formatText       = "text"
	formatJSON       = "json"
)

var knownFormats = []string{formatMatrix, formatHTML, formatMattermost, formatText, formatJSON}

func isKnownFormat(format string) bool {
	return slices.Contains(knownFormats, format)
}

// renderMessage renders one chat markup message in the given format.
// name identifies the message in the converter's parse cache.
func renderMessage(cv *connector.Converter, name, text, format string) (string, error) {
	switch format {
	case formatMatrix, formatHTML:
		msg := cv.ConvertPost(&model.Post{Id: name, Message: text})
		content := &event.MessageEventContent{MsgType: event.MsgText}
		if len(msg.Parts) > 0 {
			content = msg.Parts[0].Content
		}
		if format == formatHTML {
			if content.FormattedBody == "" {
				return html.EscapeString(content.Body), nil
			}
			return content.FormattedBody, nil
		}
		return marshalIndent(content)
	case formatMattermost:
		post := cv.ConvertOutgoing(connector.MakePortalID(name), &event.MessageEventContent{
			MsgType: event.MsgText,
			Body:    text,
		})
		if post == nil {
			return "", nil
		}
		return post.Message, nil
	case formatText:
		return chatmarkup.Parse(text).Text(), nil
	case formatJSON:
		return marshalIndent(chatmarkup.Parse(text))
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func marshalIndent(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal output: %w", err)
	}
	return string(data), nil
}
