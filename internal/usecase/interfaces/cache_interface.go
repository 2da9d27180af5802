package interfaces

// IRecordCache is a read-through cache for single records keyed by id.
//
// Implementations define the staleness policy; callers only promise to
// Delete on every successful write to the same record.

type IRecordCache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}
