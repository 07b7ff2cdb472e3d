package model

import "errors"

// Disposition represents the state of a user's like relation to a video.
type Disposition string

const (
	DispositionNone    Disposition = "none"
	DispositionLike    Disposition = "like"
	DispositionDislike Disposition = "dislike"
)

var ErrInvalidDisposition = errors.New("disposition must be like or dislike")

// IsValid reports whether the disposition is one of the known states.
func (d Disposition) IsValid() bool {
	switch d {
	case DispositionNone, DispositionLike, DispositionDislike:
		return true
	default:
		return false
	}
}

// IsSubmittable reports whether a client may submit this disposition.
// Only like and dislike are accepted; none is reached by inverting.
func (d Disposition) IsSubmittable() bool {
	return d == DispositionLike || d == DispositionDislike
}

// Toggle applies invert semantics to the current disposition:
// submitting the same disposition again removes it, submitting the
// opposite one flips the relation in place.
//
//	none    + like    -> like       none     + dislike -> dislike
//	like    + like    -> none       like     + dislike -> dislike
//	dislike + dislike -> none       dislike  + like    -> like
func (d Disposition) Toggle(submitted Disposition) (Disposition, error) {
	if !submitted.IsSubmittable() {
		return DispositionNone, ErrInvalidDisposition
	}
	if d == submitted {
		return DispositionNone, nil
	}
	return submitted, nil
}

func (d Disposition) String() string {
	return string(d)
}
