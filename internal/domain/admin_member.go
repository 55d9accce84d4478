package domain

// BanRequest body of POST /users/ban/:memId
type BanRequest struct {
	StopInfo string `json:"stop_info"`
	StopDate string `json:"stopdt"`
}

// MaxBulkIDs caps the ids of one bulk request; keep in sync with the binding tag
const MaxBulkIDs = 500

// BulkIDsRequest body of the bulk mutation endpoints
type BulkIDsRequest struct {
	IDs []int64 `json:"ids" binding:"required,max=500"`
}

// Suspension is the ban sub-state of a member. The three fields travel together.
type Suspension struct {
	Reason    *string
	Until     *string
	IsStopped bool
}

// Suspension returns the member's current suspension state
func (m *Member) Suspension() Suspension {
	if !m.IsBanned() {
		return Suspension{}
	}
	return Suspension{
		IsStopped: true,
		Reason:    m.StopReason,
		Until:     formatDate(m.StopUntil, DateLayout),
	}
}
