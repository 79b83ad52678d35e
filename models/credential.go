// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Fixed service attributes of every recovered SecureCRT credential.
const (
	ServiceSSH        = "ssh"
	ProtocolTCP       = "tcp"
	PrivateTypePasswd = "password"
	OriginSession     = "session"
)

// LoginStatus describes whether a stored credential has been tried against
// its service.
type LoginStatus string

const (
	// StatusUntried marks a credential that was recovered but never used.
	StatusUntried LoginStatus = "untried"
)

// Credential is the persisted form of a [SessionRecord]: the service it
// belongs to (address, port, protocol) plus the login pair.
type Credential struct {
	ID          string
	UnitName    string
	Address     string
	Port        int
	ServiceName string
	Protocol    string
	Username    string
	PrivateType string
	PrivateData string
	OriginType  string
	Status      LoginStatus
	CreatedAt   time.Time
}

// Record converts the credential back into the table form used by reports.
func (c Credential) Record() SessionRecord {
	return SessionRecord{
		UnitName: c.UnitName,
		Hostname: &c.Address,
		Port:     c.Port,
		Username: &c.Username,
		Password: &c.PrivateData,
	}
}

// NewCredential converts a record into a credential with the fixed service
// attributes. The caller assigns ID and CreatedAt.
func NewCredential(r SessionRecord) Credential {
	return Credential{
		UnitName:    r.UnitName,
		Address:     r.HostnameOrEmpty(),
		Port:        r.Port,
		ServiceName: ServiceSSH,
		Protocol:    ProtocolTCP,
		Username:    r.UsernameOrEmpty(),
		PrivateType: PrivateTypePasswd,
		PrivateData: r.PasswordOrEmpty(),
		OriginType:  OriginSession,
		Status:      StatusUntried,
	}
}
