package game

// Event is a notification emitted by the engine for external collaborators
// (UI, audio, milestone logic). Events carry data only; consumers must not
// mutate engine state in response.
type Event interface {
	EventName() string
}

type EntitySpawned struct {
	Id       string `json:"id"`
	Type     string `json:"type"`
	Position Vec3   `json:"position"`
}

func (EntitySpawned) EventName() string { return "entity_spawned" }

type EntityDespawned struct {
	Id string `json:"id"`
}

func (EntityDespawned) EventName() string { return "entity_despawned" }

type ItemCollected struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

func (ItemCollected) EventName() string { return "item_collected" }

type CollectionRejected struct {
	Reason string `json:"reason"`
}

func (CollectionRejected) EventName() string { return "collection_rejected" }

type InventoryChanged struct {
	Stacks   []Stack `json:"stacks"`
	Total    int     `json:"total"`
	Capacity int     `json:"capacity"`
}

func (InventoryChanged) EventName() string { return "inventory_changed" }

type UpgradePurchased struct {
	Type     string `json:"type"`
	NewLevel int    `json:"new_level"`
	Cost     int    `json:"cost"`
}

func (UpgradePurchased) EventName() string { return "upgrade_purchased" }

type UpgradePurchaseFailed struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

func (UpgradePurchaseFailed) EventName() string { return "upgrade_purchase_failed" }

type CreditsChanged struct {
	OldCredits int `json:"old_credits"`
	NewCredits int `json:"new_credits"`
	Change     int `json:"change"`
}

func (CreditsChanged) EventName() string { return "credits_changed" }

type SaveFailed struct {
	Error string `json:"error"`
}

func (SaveFailed) EventName() string { return "save_failed" }

// Publisher delivers engine events to registered consumers.
type Publisher interface {
	Publish(Event)
}

// Dispatcher fans events out to subscribers synchronously, in registration
// order, on the caller's goroutine.
type Dispatcher struct {
	nextId int
	order  []int
	subs   map[int]func(Event)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		subs: map[int]func(Event){},
	}
}

// Subscribe registers a handler and returns a function that removes it.
func (d *Dispatcher) Subscribe(fn func(Event)) func() {
	id := d.nextId
	d.nextId++
	d.order = append(d.order, id)
	d.subs[id] = fn

	return func() {
		delete(d.subs, id)
	}
}

func (d *Dispatcher) Publish(ev Event) {
	for _, id := range d.order {
		if fn, ok := d.subs[id]; ok {
			fn(ev)
		}
	}
}
