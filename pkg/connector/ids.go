// Copyright 2024-2026 Aiku AI

package connector

import (
	"strconv"

	"maunium.net/go/mautrix/bridgev2/networkid"
)

// MakePortalID creates a networkid.PortalID from a Mattermost channel ID.
func MakePortalID(channelID string) networkid.PortalID {
	return networkid.PortalID(channelID)
}

// ParsePortalID extracts the Mattermost channel ID from a PortalID.
func ParsePortalID(portalID networkid.PortalID) string {
	return string(portalID)
}

// MakeMessageID creates a networkid.MessageID from a Mattermost post ID.
func MakeMessageID(postID string) networkid.MessageID {
	return networkid.MessageID(postID)
}

// ParseMessageID extracts the Mattermost post ID from a MessageID.
func ParseMessageID(messageID networkid.MessageID) string {
	return string(messageID)
}

// MakeMessagePartID creates a networkid.PartID for message parts.
// The text part of a post is always part zero.
func MakeMessagePartID(index int) networkid.PartID {
	if index == 0 {
		return ""
	}
	return networkid.PartID(strconv.Itoa(index))
}
