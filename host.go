package pen

// ActorID is the stable key the runtime assigns to an actor.
// It outlives any particular handle value, so pen state is indexed by it.
type ActorID int64

// SurfaceID identifies a renderer surface (the pen skin).
type SurfaceID int

// DrawableID identifies a renderer drawable.
type DrawableID int

// NoDrawable is returned by actors that have no drawable yet.
const NoDrawable DrawableID = -1

// Actor is the runtime's handle to a movable, drawable entity.
type Actor interface {
	// ID returns the stable per-actor key.
	ID() ActorID

	// Position returns the actor's stage position (origin at the centre,
	// y increasing upward).
	Position() (x, y float64)

	// DrawableID returns the renderer drawable showing this actor.
	DrawableID() DrawableID

	// AddMoveListener subscribes l to this actor's movement notifications.
	AddMoveListener(l MoveListener)

	// RemoveMoveListener unsubscribes l. Removing an absent listener is a no-op.
	RemoveMoveListener(l MoveListener)
}

// MoveEvent describes one actor movement.
type MoveEvent struct {
	Actor      ActorID
	OldX, OldY float64
	NewX, NewY float64

	// Forced is set for instantaneous repositioning such as a user drag.
	Forced bool
}

// MoveListener receives movement notifications.
type MoveListener interface {
	OnMove(e MoveEvent)
}

// Renderer owns pixel output. Pen only forwards instructions to it.
//
// Draw methods report failures so the caller can log them; pen never
// propagates them to the block runtime.
type Renderer interface {
	// CreateSurface allocates a persistent drawing surface.
	CreateSurface() SurfaceID

	// CreateDrawable allocates a drawable on the named layer.
	CreateDrawable(layer string) DrawableID

	// BindSkin makes drawable display surface.
	BindSkin(drawable DrawableID, surface SurfaceID)

	// ClearSurface erases every trail and stamp on surface.
	ClearSurface(surface SurfaceID) error

	// DrawPoint draws a dot of attrs.Diameter at (x, y).
	DrawPoint(surface SurfaceID, attrs Attributes, x, y float64) error

	// DrawLine draws a segment from (x0, y0) to (x1, y1).
	DrawLine(surface SurfaceID, attrs Attributes, x0, y0, x1, y1 float64) error

	// StampDrawableOnto composites drawable's current look onto surface.
	StampDrawableOnto(surface SurfaceID, drawable DrawableID) error

	// RequestRedraw notifies the renderer that a surface changed.
	RequestRedraw()
}
