package appointments

import (
	"sync"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// Workspace holds the in-memory appointment and prescription collections
// backing one view. There is exactly one writer path at a time (sequential
// user actions), but fetches fan out and land asynchronously, so two rules
// apply when a refresh completes:
//
//   - a refresh started under an older generation (the view was invalidated
//     or navigated away) is discarded, never applied;
//   - a record mutated after the refresh began keeps its mutated value; the
//     older server snapshot must not clobber it.
type Workspace struct {
	mu  sync.Mutex
	gen uint64
	seq uint64

	appointments  map[string]*types.Appointment
	mutatedAt     map[string]uint64
	prescriptions []*types.Prescription
}

// NewWorkspace creates an empty workspace
func NewWorkspace() *Workspace {
	return &Workspace{
		appointments: make(map[string]*types.Appointment),
		mutatedAt:    make(map[string]uint64),
	}
}

// RefreshToken marks the start of a fetch; pass it back to ApplyRefresh.
type RefreshToken struct {
	gen uint64
	seq uint64
}

// BeginRefresh captures the workspace state a fetch starts under
func (w *Workspace) BeginRefresh() RefreshToken {
	w.mu.Lock()
	defer w.mu.Unlock()
	return RefreshToken{gen: w.gen, seq: w.seq}
}

// Invalidate discards all in-flight fetches; their results will not be
// applied. Called on unmount/navigation-away.
func (w *Workspace) Invalidate() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gen++
}

// ApplyRefresh installs a completed fetch. It returns false when the result
// is stale (the view moved on) and was dropped. Records mutated since the
// fetch began keep their local value.
func (w *Workspace) ApplyRefresh(token RefreshToken, appts []*types.Appointment, prescs []*types.Prescription) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if token.gen != w.gen {
		return false
	}

	fresh := make(map[string]*types.Appointment, len(appts))
	for _, apt := range appts {
		if mutSeq, ok := w.mutatedAt[apt.ID]; ok && mutSeq > token.seq {
			if local, ok := w.appointments[apt.ID]; ok {
				fresh[apt.ID] = local
				continue
			}
		}
		fresh[apt.ID] = apt
	}
	// Locally mutated records the snapshot missed survive too.
	for id, mutSeq := range w.mutatedAt {
		if mutSeq > token.seq {
			if _, ok := fresh[id]; !ok {
				if local, ok := w.appointments[id]; ok {
					fresh[id] = local
				}
			}
		}
	}

	w.appointments = fresh
	w.prescriptions = prescs
	return true
}

// ApplyMutation installs a confirmed state-machine transition or reschedule
// result. Later refresh snapshots that predate it will not overwrite it.
func (w *Workspace) ApplyMutation(apt *types.Appointment) {
	if apt == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.seq++
	w.appointments[apt.ID] = apt
	w.mutatedAt[apt.ID] = w.seq
}

// AddPrescription appends a confirmed prescription creation
func (w *Workspace) AddPrescription(p *types.Prescription) {
	if p == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.seq++
	w.prescriptions = append(w.prescriptions, p)
}

// Appointments returns a snapshot ordered by instant
func (w *Workspace) Appointments() []*types.Appointment {
	w.mu.Lock()
	appts := make([]*types.Appointment, 0, len(w.appointments))
	for _, apt := range w.appointments {
		appts = append(appts, apt)
	}
	w.mu.Unlock()

	return SortByInstant(appts)
}

// Prescriptions returns the current prescription snapshot
func (w *Workspace) Prescriptions() []*types.Prescription {
	w.mu.Lock()
	defer w.mu.Unlock()

	prescs := make([]*types.Prescription, len(w.prescriptions))
	copy(prescs, w.prescriptions)
	return prescs
}
