package dto

import "time"

// BackupResponse says where a snapshot was written
type BackupResponse struct {
	Location  string    `json:"location"`
	Bytes     int       `json:"bytes"`
	CreatedAt time.Time `json:"createdAt"`
}
