package sbuffer

import "errors"

// ErrOccluded is returned by Push when the candidate span was entirely
// behind existing geometry, or clipped to empty width against the raster
// bounds or an ancestor's bounds. The buffer is left unchanged. This is
// not an error from the caller's perspective — it is information — so
// callers typically check it with errors.Is only to decide whether to
// retry with different geometry, not to abort.
var ErrOccluded = errors.New("sbuffer: span fully occluded or clipped to empty")

// ErrMaxDepthExceeded is returned by Push when the descent stack would
// need to grow beyond the buffer's configured max depth. The buffer
// remains well-formed up to the partial work already committed; callers
// should retry on a fresh buffer initialized with a larger max depth.
var ErrMaxDepthExceeded = errors.New("sbuffer: maximum buffer depth reached")
