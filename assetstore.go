package gfx

// AssetKind tells the store how an asset should be decoded before it is handed out.
type AssetKind uint8

const (
	AssetText AssetKind = iota
	AssetBinary
)

// SubscriptionID identifies a change subscription so it can be removed later.
type SubscriptionID uint64

// AssetCallback is invoked when the asset behind name changes.
// It may run on any goroutine.
type AssetCallback func(name string)

// AssetStore provides shader source text and change notifications.
// Implementations live in the assets package.
type AssetStore interface {
	// Lock returns the asset contents and pins them until Unlock.
	// ok is false if the asset does not exist.
	Lock(name string, kind AssetKind) (data []byte, ok bool)
	Unlock(name string)

	Subscribe(name string, cb AssetCallback) SubscriptionID
	Unsubscribe(name string, id SubscriptionID)
}
