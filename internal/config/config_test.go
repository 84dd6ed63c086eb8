package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "localhost"
user = "studio"
dbname = "detailing"

[pricing]
deposit_percent = 25

[[slots]]
id = "morning"
label = "Morning Slot"
window = "09:00 - 12:00"

[[slots]]
id = "evening"
window = "17:00 - 20:00"
surcharge = 50

[payment]
studio_checkout_url = "https://pay.example/studio"

[payment.service_links]
"Ceramic Coating" = "https://pay.example/ceramic"

[membership.tier_links]
PLATINUM = "https://pay.example/platinum"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, int64(25), cfg.Pricing.DepositPercent)
	assert.Equal(t, int64(20), cfg.Pricing.MemberDiscountPercent)
	assert.Equal(t, "https://pay.example/ceramic", cfg.Payment.ServiceLinks["Ceramic Coating"])
	assert.Equal(t, "https://pay.example/platinum", cfg.Membership.TierLinks["PLATINUM"])

	slots := cfg.TimeSlots()
	require.Len(t, slots, 2)
	assert.Equal(t, "Morning Slot", slots[0].Label)
	assert.Equal(t, "evening", slots[1].Label)
	assert.Equal(t, int64(50), slots[1].Surcharge)

	assert.Contains(t, cfg.Database.DSN(), "dbname=detailing")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load(writeConfig(t, `
[database]
password = "from-file"
`))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Nil(t, cfg.TimeSlots())
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"deposit above 100":         "[pricing]\ndeposit_percent = 120\n",
		"negative surcharge":        "[[slots]]\nid = \"evening\"\nsurcharge = -5\n",
		"notification without smtp": "[notification]\nenabled = true\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
