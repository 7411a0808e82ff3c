package permission

import "github.com/supporthub/supporthub/internal/shared/authorization"

// Resources guarded by the HTTP layer.
const (
	ResourceTickets      = "tickets"
	ResourceConversation = "conversations"
	ResourceQueues       = "queues"
	ResourceQueueStats   = "queue_stats"
	ResourceAgents       = "agents"
	ResourceRoutingRules = "routing_rules"
)

const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionAssign = "assign"
	ActionReply  = "reply"
)

type policy struct {
	role     string
	resource string
	action   string
}

var defaultPolicies = []policy{
	{authorization.RoleAgent.String(), ResourceTickets, ActionRead},
	{authorization.RoleAgent.String(), ResourceTickets, ActionWrite},
	{authorization.RoleAgent.String(), ResourceConversation, ActionRead},
	{authorization.RoleAgent.String(), ResourceConversation, ActionReply},
	{authorization.RoleAgent.String(), ResourceQueues, ActionRead},
	{authorization.RoleAgent.String(), ResourceAgents, ActionRead},
	{authorization.RoleAgent.String(), ResourceAgents, ActionWrite},

	{authorization.RoleSupervisor.String(), ResourceTickets, ActionAssign},
	{authorization.RoleSupervisor.String(), ResourceQueueStats, ActionRead},
	{authorization.RoleSupervisor.String(), ResourceRoutingRules, "*"},
}

// roleInheritance lists (role, inherits-from) pairs.
var roleInheritance = [][2]string{
	{authorization.RoleSupervisor.String(), authorization.RoleAgent.String()},
	{authorization.RoleAdmin.String(), authorization.RoleSupervisor.String()},
}
