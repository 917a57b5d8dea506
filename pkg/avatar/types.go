package avatar

// Expression is the facial expression of an avatar.
type Expression int

const (
	Smile Expression = iota
	Surprised
	Closed
)

// expressions is the ordered set the expression draw picks from.
var expressions = []Expression{Smile, Surprised, Closed}

func (e Expression) String() string {
	switch e {
	case Smile:
		return "smile"
	case Surprised:
		return "surprised"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// AccessoryKind is the kind of accessory drawn on top of the face.
type AccessoryKind int

const (
	NoAccessory AccessoryKind = iota
	Hat
	Glasses
	Hair
	Bow
)

// accessoryKinds is the ordered set the accessory draw picks from.
var accessoryKinds = []AccessoryKind{NoAccessory, Hat, Glasses, Hair, Bow}

func (k AccessoryKind) String() string {
	switch k {
	case NoAccessory:
		return "none"
	case Hat:
		return "hat"
	case Glasses:
		return "glasses"
	case Hair:
		return "hair"
	case Bow:
		return "bow"
	default:
		return "unknown"
	}
}

// Format selects the representation returned by Generate.
type Format string

const (
	// FormatRaw returns the SVG markup.
	FormatRaw Format = "raw"
	// FormatDataURI returns the markup Base64-encoded behind DataURIPrefix.
	FormatDataURI Format = "data_uri"
)

func (f Format) valid() bool {
	return f == FormatRaw || f == FormatDataURI
}
