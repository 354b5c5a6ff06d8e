// Package store persists per-guild bot settings (report channel, timezone)
// as one flat JSON document, rewritten in full on every mutation.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// DefaultTimezone is assigned to every guild until an admin changes it.
const DefaultTimezone = "US/Eastern"

// Snapshot is the on-disk shape of the config file. A nil channel id means
// the guild has not designated a sports channel yet.
type Snapshot struct {
	Channels  map[string]*string `json:"SPORTS_CHANNELS"`
	Timezones map[string]string  `json:"TIME_ZONES"`
}

// GuildConfig is one guild's settings, as read for the daily fan-out.
type GuildConfig struct {
	GuildID   string
	ChannelID string // empty when no report channel is set
	Timezone  string
}

// Store holds the in-memory mirror of the config file. discordgo runs event
// handlers on separate goroutines, so all access goes through the mutex.
type Store struct {
	path string

	mu        sync.RWMutex
	channels  map[string]*string
	timezones map[string]string
}

// Load reads the config file at path. A missing or unreadable file yields an
// empty store; the in-memory state is authoritative from then on.
func Load(path string) *Store {
	s := &Store{
		path:      path,
		channels:  make(map[string]*string),
		timezones: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return s
	}

	for guildID, channelID := range snap.Channels {
		s.channels[guildID] = channelID
	}
	for guildID, zone := range snap.Timezones {
		s.timezones[guildID] = zone
	}

	return s
}

// Save atomically rewrites the whole config file. On failure the in-memory
// state remains authoritative until the next successful save.
func (s *Store) Save() error {
	s.mu.RLock()
	data, err := json.Marshal(s.snapshotLocked())
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".config-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

// EnsureGuild registers a guild with default settings if it isn't known yet.
// It reports whether anything changed, so callers can batch one save after
// reconciling many guilds.
func (s *Store) EnsureGuild(guildID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	if _, ok := s.channels[guildID]; !ok {
		s.channels[guildID] = nil
		changed = true
	}
	if _, ok := s.timezones[guildID]; !ok {
		s.timezones[guildID] = DefaultTimezone
		changed = true
	}

	return changed
}

// ReportChannel returns the guild's designated sports channel, if set.
func (s *Store) ReportChannel(guildID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	channelID, ok := s.channels[guildID]
	if !ok || channelID == nil {
		return "", false
	}
	return *channelID, true
}

// SetReportChannel designates channelID as the guild's sports channel.
func (s *Store) SetReportChannel(guildID, channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.channels[guildID] = &channelID
}

// Timezone returns the guild's configured timezone, defaulting to
// DefaultTimezone when none is stored.
func (s *Store) Timezone(guildID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if zone, ok := s.timezones[guildID]; ok && zone != "" {
		return zone
	}
	return DefaultTimezone
}

// SetTimezone stores the guild's timezone.
func (s *Store) SetTimezone(guildID, zone string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timezones[guildID] = zone
}

// Guilds returns the settings of every registered guild.
func (s *Store) Guilds() []GuildConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	guilds := make([]GuildConfig, 0, len(s.channels))
	for guildID, channelID := range s.channels {
		g := GuildConfig{GuildID: guildID, Timezone: DefaultTimezone}
		if channelID != nil {
			g.ChannelID = *channelID
		}
		if zone, ok := s.timezones[guildID]; ok && zone != "" {
			g.Timezone = zone
		}
		guilds = append(guilds, g)
	}

	return guilds
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Channels:  make(map[string]*string, len(s.channels)),
		Timezones: make(map[string]string, len(s.timezones)),
	}
	for guildID, channelID := range s.channels {
		if channelID == nil {
			snap.Channels[guildID] = nil
			continue
		}
		id := *channelID
		snap.Channels[guildID] = &id
	}
	for guildID, zone := range s.timezones {
		snap.Timezones[guildID] = zone
	}

	return snap
}
