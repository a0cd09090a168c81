package mint

import (
	"time"

	"DotNFT/internal/chain"
	"DotNFT/internal/storage"
)

type ItemStatus string

const (
	ItemUploaded ItemStatus = "uploaded"
	ItemMinted   ItemStatus = "minted"
	ItemFailed   ItemStatus = "failed"
	ItemPending  ItemStatus = "pending" // batch sent, inclusion not observed
)

// ItemResult is the fate of one input image.
type ItemResult struct {
	Index     int                  `json:"index"`
	ItemID    uint32               `json:"itemId"`
	Name      string               `json:"name"`
	ImagePath string               `json:"imagePath"`
	Image     storage.UploadResult `json:"image"`
	Metadata  storage.UploadResult `json:"metadata"`
	Status    ItemStatus           `json:"status"`
	Error     string               `json:"error,omitempty"`

	ExtrinsicHash string `json:"extrinsicHash,omitempty"`
}

// Report summarises a run. It is returned even when the run fails part way.
type Report struct {
	RunID      string    `json:"runId"`
	Admin      string    `json:"admin"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`

	CollectionID          *uint32              `json:"collectionId,omitempty"`
	CollectionImage       storage.UploadResult `json:"collectionImage"`
	CollectionMetadataURI string               `json:"collectionMetadataUri,omitempty"`
	CollectionOutcome     *chain.Outcome       `json:"collectionOutcome,omitempty"`

	Items        []ItemResult   `json:"items"`
	Uploaded     int            `json:"uploaded"`
	Minted       int            `json:"minted"`
	Failed       int            `json:"failed"`
	Pending      int            `json:"pending,omitempty"`
	BatchOutcome *chain.Outcome `json:"batchOutcome,omitempty"`
}

// Elapsed is the wall time of the run.
func (r *Report) Elapsed() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
