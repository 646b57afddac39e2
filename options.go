package rx

// InspectOptions controls which advisory checks Inspect runs.
type InspectOptions struct {
	// DisableOverlapCheck disables reporting of overlapping ranges within one class.
	DisableOverlapCheck bool
	// DisableCaptureNameCheck disables reporting of duplicate capture group names.
	DisableCaptureNameCheck bool
	// DisableEmptyAlternativeCheck disables reporting of empty alternatives placed
	// before later alternatives in a choice.
	DisableEmptyAlternativeCheck bool
}

// normalize normalizes the InspectOptions.
func (o *InspectOptions) normalize() InspectOptions {
	if o == nil {
		return InspectOptions{}
	}

	return *o
}
