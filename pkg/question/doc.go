/*
Package question implements the evaluation contract of a single interactive
question: given a raw line of input, or its absence, produce the final answer
or a typed failure.

# Evaluation order

Evaluate applies the configured policies in a fixed order:

 1. Absent input with a default returns the default. Nothing else runs.
 2. A required question without default fails with *MissingValueError on
    absent or empty input.
 3. Other absent input yields an empty Answer.
 4. A configured range rejects values outside it with *OutOfRangeError.
 5. The validation rule rejects values with *validation.Error.
 6. The modifier pipeline transforms the value into the final answer.

# Lifecycle

A Question starts Unset, becomes Configured once it has a message (New or
Call), and Evaluated after a successful evaluation. Failed evaluations leave
it Configured so the caller can ask again. Reset returns it to Unset.

Terminal flags (echo, raw, mask, character mode), the read-as conversion and
the error action are stored here but acted upon by the I/O layer.
*/
package question
