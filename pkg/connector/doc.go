// Copyright 2024-2026 Aiku AI

// Package connector converts chat markup messages for the Matrix-Mattermost
// bridge using the mautrix bridgev2 message types.
//
// # Core Types
//
// [Converter] turns Mattermost posts written in chat markup into
// [bridgev2.ConvertedMessage] and [bridgev2.ConvertedEdit] values carrying
// Matrix HTML, and renders outgoing Matrix bodies as Mattermost markdown.
// Parsed documents are cached per post ID; a cached parse is reused only
// while the post text is unchanged, and deleting a post evicts it.
//
// [Config] is loaded from YAML and upgraded with go.mau.fi/util/configupgrade,
// following the layout of [ExampleConfig].
//
// # Sub-packages
//
//   - matrixfmt renders chat markup documents as Matrix HTML content.
//   - mattermostfmt renders chat markup documents as Mattermost markdown.
package connector
