// ABOUTME: Charm KV client for user preferences with automatic cloud sync.
// ABOUTME: Boolean feature toggles stored under a "setting:" key prefix.
package settings

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/kv"
)

const (
	dbName        = "nutrilog"
	settingPrefix = "setting:"
)

// Known setting keys. Unknown keys are rejected so typos don't create
// phantom settings.
const (
	FoodAIEnabled     = "food_ai_enabled"
	ExerciseAIEnabled = "exercise_ai_enabled"
	MealPlanAIEnabled = "meal_plan_ai_enabled"
	SilentNotif       = "silent_notif_enabled"
)

// Keys lists every known setting in display order.
var Keys = []string{FoodAIEnabled, ExerciseAIEnabled, MealPlanAIEnabled, SilentNotif}

var (
	globalClient *Client
	clientOnce   sync.Once
	clientErr    error
)

type Client struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

// InitClient initializes the global settings client.
// Thread-safe; can be called multiple times.
func InitClient() (*Client, error) {
	clientOnce.Do(func() {
		if host := os.Getenv("CHARM_HOST"); host == "" {
			_ = os.Setenv("CHARM_HOST", "cloud.charm.sh")
		}

		db, err := kv.OpenWithDefaults(dbName)
		if err != nil {
			// Badger takes an exclusive directory lock, so a second
			// process (an MCP server, say) cannot open the store.
			clientErr = fmt.Errorf("open settings store (is another nutrilog process running?): %w", err)
			return
		}

		globalClient = &Client{
			kv:       db,
			autoSync: true,
		}

		// Pull remote data on startup.
		_ = db.Sync()
	})

	return globalClient, clientErr
}

// GetClient returns the global client, initializing if needed.
func GetClient() (*Client, error) {
	return InitClient()
}

// Close closes the KV database connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}

// Sync synchronizes local state with Charm Cloud.
func (c *Client) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kv.Sync()
}

// SetAutoSync enables or disables automatic sync after writes.
func (c *Client) SetAutoSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoSync = enabled
}

// GetBool reads a boolean setting. Unset settings default to false.
func (c *Client) GetBool(key string) (bool, error) {
	if !validKey(key) {
		return false, fmt.Errorf("unknown setting %q", key)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	val, err := c.kv.Get([]byte(settingPrefix + key))
	if err != nil || len(val) == 0 {
		return false, nil
	}
	return string(val) == "true", nil
}

// SetBool writes a boolean setting and syncs when auto-sync is on.
func (c *Client) SetBool(key string, value bool) error {
	if !validKey(key) {
		return fmt.Errorf("unknown setting %q", key)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	data := []byte("false")
	if value {
		data = []byte("true")
	}
	if err := c.kv.Set([]byte(settingPrefix+key), data); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

// All reads every known setting into a map.
func (c *Client) All() (map[string]bool, error) {
	out := make(map[string]bool, len(Keys))
	for _, key := range Keys {
		v, err := c.GetBool(key)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// syncIfEnabled calls Sync if autoSync is enabled.
func (c *Client) syncIfEnabled() {
	if c.autoSync {
		_ = c.kv.Sync()
	}
}

func validKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
