package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetRoutingKeys(t *testing.T) {
	t.Run("default list keeps order", func(t *testing.T) {
		c := Configuration{}
		c.Notify.RoutingKeys = "email_submission,job1,goodwill,tca"
		require.Equal(t, []string{"email_submission", "job1", "goodwill", "tca"}, c.GetRoutingKeys())
	})

	t.Run("blank entries and spaces are dropped", func(t *testing.T) {
		c := Configuration{}
		c.Notify.RoutingKeys = " email_submission , ,job1,"
		require.Equal(t, []string{"email_submission", "job1"}, c.GetRoutingKeys())
	})

	t.Run("empty config yields no keys", func(t *testing.T) {
		c := Configuration{}
		require.Empty(t, c.GetRoutingKeys())
	})
}
