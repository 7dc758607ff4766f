// Package storage keeps per-guild settings and command history in a JSON
// datastore, one record per guild ID.
package storage

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/keshon/datastore"
)

const commandHistoryLimit = 50

type Storage struct {
	ds *datastore.DataStore
	mu sync.Mutex
}

// CommandHistoryRecord is one logged command invocation.
type CommandHistoryRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Param     string    `json:"param"`
	Datetime  time.Time `json:"datetime"`
}

// Record is everything stored for one guild.
type Record struct {
	ManagerRoleID       string                 `json:"manager_role_id"`
	CommandsHistoryList []CommandHistoryRecord `json:"cmd_history"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		record := &Record{}
		s.ds.Add(guildID, record)
		return record, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}
	return &record, nil
}

// ManagerRole returns the per-guild manager role ID, empty when unset.
func (s *Storage) ManagerRole(guildID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return "", err
	}
	return record.ManagerRoleID, nil
}

// SetManagerRole stores the per-guild manager role; an empty ID clears it.
func (s *Storage) SetManagerRole(guildID, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.ManagerRoleID = roleID
	s.ds.Add(guildID, record)
	return nil
}

// AppendCommandHistory logs one invocation, keeping the list bounded.
func (s *Storage) AppendCommandHistory(guildID string, rec CommandHistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.CommandsHistoryList = append(record.CommandsHistoryList, rec)
	if n := len(record.CommandsHistoryList); n > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[n-commandHistoryLimit:]
	}
	s.ds.Add(guildID, record)
	return nil
}

// CommandHistory returns the logged invocations, oldest first.
func (s *Storage) CommandHistory(guildID string) ([]CommandHistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandsHistoryList, nil
}
