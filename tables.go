package headgear

// Category names a classification bucket for a character accessory.
type Category string

const (
	CategoryHair Category = "Hair"
	CategoryFace Category = "Face"
	CategoryHat  Category = "Hat"

	// CategoryHead is never assigned to an accessory; its attachment list
	// feeds IsHeadPart only.
	CategoryHead Category = "Head"

	// CategoryUnknown is assigned to accessories whose Handle carries no
	// recognized attachment.
	CategoryUnknown Category = "Unknown"
)

// Classifiable reports whether accessories can be queried by this category.
func (c Category) Classifiable() bool {
	return c == CategoryHair || c == CategoryFace || c == CategoryHat
}

// Entry binds one category to the attachment names that signal it.
type Entry struct {
	Category Category
	Names    []string
}

// Tables is an ordered category table. Slice order is classification
// priority: when an accessory carries attachments from several categories,
// the first matching entry wins.
type Tables []Entry

// Names returns the attachment list for a category, nil when absent.
func (t Tables) Names(c Category) []string {
	for _, e := range t {
		if e.Category == c {
			return e.Names
		}
	}
	return nil
}

// DefaultTables returns the stock rig tables. Hair outranks Face, Face
// outranks Hat.
func DefaultTables() Tables {
	return Tables{
		{Category: CategoryHair, Names: []string{
			"HairAttachment",
			"HairTopAttachment",
			"HairBackAttachment",
			"HairFrontAttachment",
		}},
		{Category: CategoryFace, Names: []string{
			"FaceFrontAttachment",
			"FaceCenterAttachment",
		}},
		{Category: CategoryHat, Names: []string{
			"HatAttachment",
			"HatCenterAttachment",
		}},
		{Category: CategoryHead, Names: []string{
			"HairAttachment",
			"HatAttachment",
			"FaceFrontAttachment",
			"FaceCenterAttachment",
			"NeckRigAttachment",
		}},
	}
}
