package domain

// BriefingStatus is the triage state of a client-submitted briefing.
type BriefingStatus string

const (
	BriefingStatusPending   BriefingStatus = "PENDING"
	BriefingStatusConverted BriefingStatus = "CONVERTED"
	BriefingStatusRejected  BriefingStatus = "REJECTED"
)

func (s BriefingStatus) String() string { return string(s) }

func (s BriefingStatus) IsValid() bool {
	switch s {
	case BriefingStatusPending, BriefingStatusConverted, BriefingStatusRejected:
		return true
	}
	return false
}

// Department is the agency department responsible for a request.
type Department string

const (
	DepartmentDesign     Department = "DESIGN"
	DepartmentCopy       Department = "COPY"
	DepartmentDev        Department = "DEV"
	DepartmentPlanning   Department = "PLANNING"
	DepartmentProduction Department = "PRODUCTION"
	DepartmentMedia      Department = "MEDIA"
)

func (d Department) String() string { return string(d) }

func (d Department) IsValid() bool {
	switch d {
	case DepartmentDesign, DepartmentCopy, DepartmentDev,
		DepartmentPlanning, DepartmentProduction, DepartmentMedia:
		return true
	}
	return false
}

// RequestType classifies the kind of creative work requested.
type RequestType string

const (
	RequestTypeSocialMedia RequestType = "SOCIAL_MEDIA"
	RequestTypeCampaign    RequestType = "CAMPAIGN"
	RequestTypeBranding    RequestType = "BRANDING"
	RequestTypeWebsite     RequestType = "WEBSITE"
	RequestTypeVideo       RequestType = "VIDEO"
	RequestTypePrint       RequestType = "PRINT"
	RequestTypeOther       RequestType = "OTHER"
)

func (t RequestType) String() string { return string(t) }

func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeSocialMedia, RequestTypeCampaign, RequestTypeBranding,
		RequestTypeWebsite, RequestTypeVideo, RequestTypePrint, RequestTypeOther:
		return true
	}
	return false
}

// RequestPriority is the urgency of a request.
type RequestPriority string

const (
	RequestPriorityLow    RequestPriority = "LOW"
	RequestPriorityMedium RequestPriority = "MEDIUM"
	RequestPriorityHigh   RequestPriority = "HIGH"
	RequestPriorityUrgent RequestPriority = "URGENT"
)

func (p RequestPriority) String() string { return string(p) }

func (p RequestPriority) IsValid() bool {
	switch p {
	case RequestPriorityLow, RequestPriorityMedium, RequestPriorityHigh, RequestPriorityUrgent:
		return true
	}
	return false
}

// EventType identifies the kind of ledger entry.
type EventType string

const (
	EventTypeCreated         EventType = "CREATED"
	EventTypeStatusChanged   EventType = "STATUS_CHANGED"
	EventTypeAssigned        EventType = "ASSIGNED"
	EventTypeCommentAdded    EventType = "COMMENT_ADDED"
	EventTypeRevisionAdded   EventType = "REVISION_ADDED"
	EventTypeDueDateChanged  EventType = "DUE_DATE_CHANGED"
	EventTypePriorityChanged EventType = "PRIORITY_CHANGED"
)

func (t EventType) String() string { return string(t) }

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeCreated, EventTypeStatusChanged, EventTypeAssigned, EventTypeCommentAdded,
		EventTypeRevisionAdded, EventTypeDueDateChanged, EventTypePriorityChanged:
		return true
	}
	return false
}

// UserRole represents the authorization level of a caller.
type UserRole string

const (
	UserRoleAgencyAdmin UserRole = "AGENCY_ADMIN"
	UserRoleAgencyUser  UserRole = "AGENCY_USER"
	UserRoleClientUser  UserRole = "CLIENT_USER"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAgencyAdmin, UserRoleAgencyUser, UserRoleClientUser:
		return true
	}
	return false
}

// IsAgency reports whether the role belongs to agency staff.
func (r UserRole) IsAgency() bool {
	return r == UserRoleAgencyAdmin || r == UserRoleAgencyUser
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAgencyAdmin
}

// IsClient reports whether the role belongs to a client company user.
func (r UserRole) IsClient() bool {
	return r == UserRoleClientUser
}
