package service

// StorefrontMetrics records business events for observability.
type StorefrontMetrics interface {
	RecordCartAddition(productID string)
	RecordCheckoutCompleted(total int64)
	RecordTrackingLookup()
	RecordCopywriterFallback(operation string)
}
