package gles

// Buffer is the interface a frontend buffer object presents to the draw
// pipeline. Data upload is a collaborator concern.
type Buffer interface {
	// MarkTransformFeedbackUsage records that the buffer was written by
	// transform feedback, so later reads know to resolve the written
	// contents first.
	MarkTransformFeedbackUsage()
}

// TransformFeedback is a frontend transform-feedback object. Feedback is
// considered active for a draw iff the current object is started and not
// paused.
type TransformFeedback interface {
	Started() bool
	Paused() bool
}
