package kalshi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acastellanos/tradegate/internal/adapters/kalshi"
)

func TestSelectStrategy_Precedence(t *testing.T) {
	key := testKey(t)
	pemData := string(pemEncode(t, key, true))

	cases := []struct {
		name  string
		creds kalshi.Credentials
		want  kalshi.StrategyKind
	}{
		{
			name:  "key id plus private key",
			creds: kalshi.Credentials{KeyID: "kid", PrivateKeyPEM: pemData},
			want:  kalshi.KindKeyPair,
		},
		{
			name: "keypair wins even with login also configured",
			creds: kalshi.Credentials{
				KeyID: "kid", PrivateKeyPEM: pemData,
				Email: "a@b.c", Password: "hunter2",
			},
			want: kalshi.KindKeyPair,
		},
		{
			name:  "key id alone becomes bearer",
			creds: kalshi.Credentials{KeyID: "token-ish"},
			want:  kalshi.KindBearer,
		},
		{
			name: "bearer wins over login",
			creds: kalshi.Credentials{
				KeyID: "token-ish", Email: "a@b.c", Password: "hunter2",
			},
			want: kalshi.KindBearer,
		},
		{
			name:  "email and password",
			creds: kalshi.Credentials{Email: "a@b.c", Password: "hunter2"},
			want:  kalshi.KindLogin,
		},
		{
			name:  "email without password falls through",
			creds: kalshi.Credentials{Email: "a@b.c"},
			want:  kalshi.KindUnauthenticated,
		},
		{
			name:  "private key without key id falls through",
			creds: kalshi.Credentials{PrivateKeyPEM: pemData},
			want:  kalshi.KindUnauthenticated,
		},
		{
			name:  "no credentials",
			creds: kalshi.Credentials{},
			want:  kalshi.KindUnauthenticated,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			strategy, err := kalshi.SelectStrategy(tc.creds)
			require.NoError(t, err)
			assert.Equal(t, tc.want, strategy.Kind)
		})
	}
}

func TestSelectStrategy_PopulatesVariantFields(t *testing.T) {
	key := testKey(t)
	pemData := string(pemEncode(t, key, true))

	kp, err := kalshi.SelectStrategy(kalshi.Credentials{KeyID: "kid", PrivateKeyPEM: pemData})
	require.NoError(t, err)
	assert.Equal(t, "kid", kp.KeyID)
	require.NotNil(t, kp.PrivateKey)
	assert.Zero(t, kp.PrivateKey.N.Cmp(key.N))
	assert.True(t, kp.Live())

	bearer, err := kalshi.SelectStrategy(kalshi.Credentials{KeyID: "kid"})
	require.NoError(t, err)
	assert.Equal(t, "kid", bearer.Token)

	login, err := kalshi.SelectStrategy(kalshi.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", login.Email)
	assert.Equal(t, "pw", login.Password)

	unauth, err := kalshi.SelectStrategy(kalshi.Credentials{})
	require.NoError(t, err)
	assert.False(t, unauth.Live())
}

func TestSelectStrategy_MalformedKey(t *testing.T) {
	_, err := kalshi.SelectStrategy(kalshi.Credentials{
		KeyID:         "kid",
		PrivateKeyPEM: "not a pem at all",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, kalshi.ErrKeyFormat)
}

// No error for no credentials: unauthenticated is a valid terminal strategy,
// interpreted downstream as simulation mode.
func TestSelectStrategy_NoCredentialsIsNotAnError(t *testing.T) {
	strategy, err := kalshi.SelectStrategy(kalshi.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, kalshi.KindUnauthenticated, strategy.Kind)
}
