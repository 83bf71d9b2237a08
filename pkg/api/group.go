package api

type CreateGroupRequest struct {
	Name    string    `json:"name"`
	Members []*Person `json:"members"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"groupId"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type UpdateGroupRequest struct {
	GroupID string    `json:"groupId"`
	Name    string    `json:"name"`
	Members []*Person `json:"members"`
}

type UpdateGroupResponse struct {
	Group *Group `json:"group"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"groupId"`
}

type DeleteGroupResponse struct{}

type GetGroupSettlementsRequest struct {
	GroupID string `json:"groupId"`
}

// GetGroupSettlementsResponse holds one settlement per ledger, in ledger order.
type GetGroupSettlementsResponse struct {
	Settlements []*LedgerSettlement `json:"settlements"`
}
