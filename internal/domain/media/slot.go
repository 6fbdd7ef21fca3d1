package media

// Slot names one image reference on a user record. A slot holds at most
// one current storage key; every change writes a new blob and then drops
// the previous one.
type Slot int

const (
	SlotProfile Slot = iota
	SlotCover
)

// Ext is the only extension the encoder produces.
const Ext = ".webp"

const (
	ThumbMaxEdge = 400
	ThumbQuality = 75
	ThumbPrefix  = "thumb_"
)

// Spec carries the per-slot normalization and encoding constants.
type Spec struct {
	MaxWidth  int
	MaxHeight int
	Sharpen   float64
	Quality   int
}

var slotSpecs = map[Slot]Spec{
	SlotProfile: {MaxWidth: 1200, MaxHeight: 1200, Sharpen: 1, Quality: 85},
	SlotCover:   {MaxWidth: 1200, MaxHeight: 1200, Sharpen: 1, Quality: 85},
}

var slotCategories = map[Slot]string{
	SlotProfile: "profile-images",
	SlotCover:   "cover-images",
}

func (s Slot) Spec() Spec { return slotSpecs[s] }

// Category is the storage namespace the slot's blobs live under.
func (s Slot) Category() string { return slotCategories[s] }

func (s Slot) String() string {
	switch s {
	case SlotProfile:
		return "profile_image"
	case SlotCover:
		return "cover_image"
	}
	return "unknown"
}

// Key builds the storage key for an object name within a category.
func Key(category, name string) string {
	return category + "/" + name + Ext
}
