package events

const (
	TopicOrderPaid      = "storefront.order.paid"
	TopicOrderCancelled = "storefront.order.cancelled"
	TopicLeadReceived   = "storefront.lead.received"
)

// Partition key = order (or lead) id, so events for one entity keep
// their order.
func PartitionKey(id string) []byte { return []byte(id) }
