package mint

// Stage is a step of a minting run. Stages only move forward.
type Stage int

const (
	StageStart Stage = iota
	StageAccountDerived
	StageCollectionImageUploaded
	StageCollectionMetadataUploaded
	StageCollectionCreated
	StageItemImageUploaded
	StageItemMetadataUploaded
	StageItemsBatchSubmitted
	StageDone
)

var stageNames = [...]string{
	"start",
	"account_derived",
	"collection_image_uploaded",
	"collection_metadata_uploaded",
	"collection_created",
	"item_image_uploaded",
	"item_metadata_uploaded",
	"items_batch_submitted",
	"done",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Progress is reported to the Observer when a stage completes.
type Progress struct {
	Stage Stage
	Item  int    // input index for item stages, -1 otherwise
	Name  string // item or collection name
	Err   error  // set when an item stage failed
}

// Observer receives progress. Calls are serialised by the orchestrator.
type Observer func(Progress)
