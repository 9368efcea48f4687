// Copyright 2024-2026 Aiku AI

package connector

import (
	"fmt"

	"github.com/mattermost/mattermost/server/public/model"
	"github.com/rs/zerolog"
	"maunium.net/go/mautrix/bridgev2"
	"maunium.net/go/mautrix/bridgev2/database"
	"maunium.net/go/mautrix/bridgev2/networkid"
	"maunium.net/go/mautrix/event"

	"github.com/aiku/chatmarkup/pkg/chatmarkup"
	"github.com/aiku/chatmarkup/pkg/connector/matrixfmt"
	"github.com/aiku/chatmarkup/pkg/connector/mattermostfmt"
)

// Converter translates chat markup messages between Mattermost posts and
// Matrix events. It is safe for concurrent use.
type Converter struct {
	Config Config

	log   zerolog.Logger
	cache *parseCache
}

// NewConverter validates cfg and returns a converter that logs to log.
func NewConverter(cfg Config, log zerolog.Logger) (*Converter, error) {
	if err := cfg.PostProcess(); err != nil {
		return nil, fmt.Errorf("failed to post-process config: %w", err)
	}
	return &Converter{
		Config: cfg,
		log:    log.With().Str("component", "chatmarkup").Logger(),
		cache:  newParseCache(cfg.CacheMaxEntries),
	}, nil
}

// parse returns the document for a message, reusing the cached parse when
// the message text has not changed.
func (cv *Converter) parse(messageID networkid.MessageID, text string) *chatmarkup.Document {
	if doc, ok := cv.cache.get(messageID, text); ok {
		cv.log.Trace().Str("post_id", ParseMessageID(messageID)).Msg("Parse cache hit")
		return doc
	}
	doc := chatmarkup.Parse(text)
	cv.cache.put(messageID, text, doc)
	cv.log.Debug().
		Str("post_id", ParseMessageID(messageID)).
		Int("lines", len(doc.Lines)).
		Bool("formatted", doc.HasFormatting()).
		Msg("Parsed message markup")
	return doc
}

func (cv *Converter) messageContent(messageID networkid.MessageID, text string) *event.MessageEventContent {
	if !cv.Config.HTMLEnabled {
		return &event.MessageEventContent{
			MsgType: event.MsgText,
			Body:    text,
		}
	}
	return matrixfmt.Render(cv.parse(messageID, text), text, cv.Config.renderOptions())
}

// ConvertPost converts a Mattermost post to a bridgev2.ConvertedMessage.
// Posts without text produce a message with no parts.
func (cv *Converter) ConvertPost(post *model.Post) *bridgev2.ConvertedMessage {
	if post == nil {
		return nil
	}
	var parts []*bridgev2.ConvertedMessagePart

	if post.Message != "" {
		parts = append(parts, &bridgev2.ConvertedMessagePart{
			ID:      MakeMessagePartID(0),
			Type:    event.EventMessage,
			Content: cv.messageContent(MakeMessageID(post.Id), post.Message),
		})
	}

	msg := &bridgev2.ConvertedMessage{
		Parts: parts,
	}

	if post.RootId != "" {
		replyTo := MakeMessageID(post.RootId)
		msg.ReplyTo = &networkid.MessageOptionalPartID{MessageID: replyTo}
	}

	return msg
}

// ConvertEdit converts an edited Mattermost post to a bridgev2.ConvertedEdit
// targeting the first existing part of the message.
func (cv *Converter) ConvertEdit(post *model.Post, existing []*database.Message) *bridgev2.ConvertedEdit {
	if post == nil {
		return nil
	}
	var targetPart *database.Message
	if len(existing) > 0 {
		targetPart = existing[0]
	}

	return &bridgev2.ConvertedEdit{
		ModifiedParts: []*bridgev2.ConvertedEditPart{{
			Part:    targetPart,
			Type:    event.EventMessage,
			Content: cv.messageContent(MakeMessageID(post.Id), post.Message),
		}},
	}
}

// HandleDelete drops any cached parse of a deleted post.
func (cv *Converter) HandleDelete(post *model.Post) {
	if post == nil {
		return
	}
	if cv.cache.remove(MakeMessageID(post.Id)) {
		cv.log.Debug().Str("post_id", post.Id).Msg("Evicted deleted post from parse cache")
	}
}

// ConvertOutgoing renders the chat markup body of a Matrix message as a
// Mattermost post in the portal's channel.
func (cv *Converter) ConvertOutgoing(portalID networkid.PortalID, content *event.MessageEventContent) *model.Post {
	if content == nil || content.Body == "" {
		return nil
	}
	return mattermostfmt.Post(ParsePortalID(portalID), content.Body)
}
