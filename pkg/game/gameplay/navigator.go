// Package gameplay provides the per-mover logic of the maze: the
// navigation state machine, bump detection, wandering and spawning.
package gameplay

import (
	"log/slog"

	"github.com/google/uuid"

	"polarmaze/pkg/engine/logging"
	"polarmaze/pkg/engine/world"
)

// Role decides how a mover takes part in bump detection.
type Role int

const (
	RolePlayer Role = iota
	RoleHostile
	RoleNeutral
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleHostile:
		return "hostile"
	case RoleNeutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// ParseRole is the inverse of Role.String. Unknown names are neutral.
func ParseRole(s string) Role {
	switch s {
	case "player":
		return RolePlayer
	case "hostile":
		return RoleHostile
	default:
		return RoleNeutral
	}
}

// MoveResult reports what a move request did.
type MoveResult int

const (
	// MoveStarted means the mover is now travelling to the target.
	MoveStarted MoveResult = iota
	// MoveBusy means a move was already in progress.
	MoveBusy
	// MoveNoPassage means there is no cell that way, or a wall.
	MoveNoPassage
	// MoveDoorOpened means a key was spent and the door opened. The mover
	// stays put; a second request walks through.
	MoveDoorOpened
	// MoveDoorLocked means there is a door and no key to open it.
	MoveDoorLocked
	// MoveBumped means another mover holds or is entering the target.
	MoveBumped
)

func (m MoveResult) String() string {
	switch m {
	case MoveStarted:
		return "started"
	case MoveBusy:
		return "busy"
	case MoveNoPassage:
		return "no passage"
	case MoveDoorOpened:
		return "door opened"
	case MoveDoorLocked:
		return "door locked"
	case MoveBumped:
		return "bumped"
	default:
		return "unknown"
	}
}

// InteractionHandler is told when a mover's request is blocked by another mover.
type InteractionHandler interface {
	OnBump(mover, obstacle *Navigator)
}

// Navigator tracks one mover's position in the maze. It is idle while
// pending is nil and moving otherwise; a move commits on the tick its
// elapsed frame count reaches the required count.
type Navigator struct {
	ID   uuid.UUID
	Role Role
	Name string

	Inventory *world.Inventory

	grid    *world.Grid
	tracker *Tracker

	current  *world.Cell
	pending  *world.Cell
	previous *world.Cell

	framesElapsed  int
	framesRequired int
	facing         world.Heading
	justCompleted  bool

	handler  InteractionHandler
	messages MessageSink
	logger   *slog.Logger
}

// NavOption configures a Navigator.
type NavOption func(*Navigator)

// WithRole sets the mover's role. The default is RoleNeutral.
func WithRole(r Role) NavOption {
	return func(n *Navigator) { n.Role = r }
}

// WithName sets a display name.
func WithName(name string) NavOption {
	return func(n *Navigator) { n.Name = name }
}

// WithID sets the mover's identity instead of a random one.
func WithID(id uuid.UUID) NavOption {
	return func(n *Navigator) { n.ID = id }
}

// WithHandler sets the callback invoked on bumps.
func WithHandler(h InteractionHandler) NavOption {
	return func(n *Navigator) { n.handler = h }
}

// WithMessages routes player-facing messages to sink.
func WithMessages(sink MessageSink) NavOption {
	return func(n *Navigator) { n.messages = sink }
}

// WithLogger sets the logger used for rejected moves and door events.
func WithLogger(l *slog.Logger) NavOption {
	return func(n *Navigator) { n.logger = l }
}

// NewNavigator places a new idle mover on start. speedFrames is the number
// of ticks a single move takes and is clamped to at least one.
func NewNavigator(grid *world.Grid, start *world.Cell, speedFrames int, opts ...NavOption) *Navigator {
	n := &Navigator{
		ID:        uuid.New(),
		Role:      RoleNeutral,
		Inventory: world.NewInventory(),
		grid:      grid,
		current:   start,
		logger:    logging.Discard(),
	}
	n.SetSpeed(speedFrames)
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Grid returns the grid the mover lives on.
func (n *Navigator) Grid() *world.Grid {
	return n.grid
}

// Current returns the cell the mover is authoritatively in.
func (n *Navigator) Current() *world.Cell {
	return n.current
}

// Pending returns the cell being moved into, or nil when idle.
func (n *Navigator) Pending() *world.Cell {
	return n.pending
}

// Previous returns the cell the mover left on its last completed move.
func (n *Navigator) Previous() *world.Cell {
	return n.previous
}

// Facing returns the heading of the last move started.
func (n *Navigator) Facing() world.Heading {
	return n.facing
}

// Speed returns the number of ticks a move takes.
func (n *Navigator) Speed() int {
	return n.framesRequired
}

// SetSpeed changes the ticks per move. It applies to moves in flight too.
func (n *Navigator) SetSpeed(frames int) {
	if frames < 1 {
		frames = 1
	}
	n.framesRequired = frames
}

// Progress returns how far through the current move the mover is, in [0,1).
func (n *Navigator) Progress() float64 {
	if n.pending == nil {
		return 0
	}
	return float64(n.framesElapsed) / float64(n.framesRequired)
}

// FinishedMoving reports whether the mover is idle.
func (n *Navigator) FinishedMoving() bool {
	return n.pending == nil || n.pending == n.current
}

// JustCompleted is true only during the tick on which a move committed.
func (n *Navigator) JustCompleted() bool {
	return n.justCompleted
}

// Location returns the mover's position, interpolated between cell
// centers while a move is in progress.
func (n *Navigator) Location() world.Point {
	from := n.grid.Center(n.current)
	if n.pending == nil {
		return from
	}
	return from.Lerp(n.grid.Center(n.pending), n.Progress())
}

// LinkedCells returns the cells reachable from the current cell in one move.
func (n *Navigator) LinkedCells() []*world.Cell {
	return n.grid.Links(n.current)
}

// Place puts the mover on cell at once, cancelling any move in progress.
func (n *Navigator) Place(cell *world.Cell) {
	n.current = cell
	n.pending = nil
	n.previous = nil
	n.framesElapsed = 0
	n.justCompleted = false
}

// RequestMove asks to move one cell along h. Rejections are logged and
// reported through the result; they never change the mover's cell.
func (n *Navigator) RequestMove(h world.Heading) MoveResult {
	log := n.logger.With("mover", n.ID, "from", n.current.String(), "heading", h.String())

	if n.pending != nil {
		log.Debug("move rejected", "reason", "already moving")
		return MoveBusy
	}

	target := n.grid.Neighbor(n.current, h)
	if target == nil {
		log.Debug("move rejected", "reason", "no adjacent cell")
		return MoveNoPassage
	}

	if !n.current.IsLinked(target) {
		if !n.grid.DoorExists(n.current, target) {
			log.Debug("move rejected", "reason", "wall")
			return MoveNoPassage
		}
		return n.tryDoor(target, log)
	}

	if obstacle := n.tracker.Obstacle(n, target); obstacle != nil {
		log.Debug("move rejected", "reason", "bump", "obstacle", obstacle.ID)
		if n.handler != nil {
			n.handler.OnBump(n, obstacle)
		}
		return MoveBumped
	}

	n.pending = target
	n.framesElapsed = 0
	n.facing = h
	return MoveStarted
}

func (n *Navigator) tryDoor(target *world.Cell, log *slog.Logger) MoveResult {
	key := n.Inventory.Consume(world.KeyItem)
	if key == nil {
		log.Debug("move rejected", "reason", "door locked")
		Say(n.messages, MsgDoorLocked)
		return MoveDoorLocked
	}
	if err := n.grid.OpenDoor(n.current, target); err != nil {
		n.Inventory.Put(key)
		log.Warn("door open failed", "error", err)
		return MoveDoorLocked
	}
	log.Info("door opened", "key", key.Name, "to", target.String())
	Say(n.messages, MsgDoorOpened, key.Name)
	return MoveDoorOpened
}

// Tick advances the mover by one frame.
func (n *Navigator) Tick() {
	n.justCompleted = false
	if n.pending == nil {
		return
	}
	n.framesElapsed++
	if n.framesElapsed >= n.framesRequired {
		n.previous = n.current
		n.current = n.pending
		n.pending = nil
		n.framesElapsed = 0
		n.justCompleted = true
	}
}
