package entities

import "time"

// Token is a non-fungible ownership record proving purchase of one item.
// Token ids are sequential starting at 1; 0 is never issued. Tokens are
// transferable but never destroyed.
type Token struct {
	TokenID     uint64    `json:"token_id"`
	Owner       string    `json:"owner"`
	MetadataRef string    `json:"metadata_ref"`
	MintedAt    time.Time `json:"minted_at"`
}
