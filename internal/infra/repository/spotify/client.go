// Package spotify holds the adapters in front of the Spotify Web API: an
// app-token client for public catalog reads, a session for the OAuth user
// client, and the saved-tracks store built on top of it.
package spotify

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	spotifyLib "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

type ClientConfig struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	tracer       trace.Tracer
}

func NewClientConfig(
	clientID string,
	clientSecret string,
	httpClient *http.Client,
	tracer trace.Tracer,
) *ClientConfig {
	return &ClientConfig{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   httpClient,
		tracer:       tracer,
	}
}

// Client is the public catalog client. It authenticates with the client
// credentials flow, so it can search and read artist metadata without a user
// session. The zmb3 client is swapped out whenever the token nears expiry.
type Client struct {
	tracer    trace.Tracer
	mu        sync.RWMutex
	apiClient *spotifyLib.Client
	config    clientcredentials.Config
}

func NewClient(ctx context.Context, config *ClientConfig) (*Client, error) {
	spotifyConfig := clientcredentials.Config{
		ClientID:     config.clientID,
		ClientSecret: config.clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	token, err := spotifyConfig.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("spotifyConfig.Token: %w", err)
	}

	if config.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, config.httpClient)
	}

	httpClient := spotifyauth.New().Client(ctx, token)

	return &Client{
		tracer:    config.tracer,
		apiClient: spotifyLib.New(httpClient),
		config:    spotifyConfig,
	}, nil
}

func (c *Client) api(ctx context.Context) *spotifyLib.Client {
	if err := c.renewTokenIfNeeded(ctx); err != nil {
		// Keep serving with the current client; requests fail loudly if the
		// token really is gone.
		return c.current()
	}
	return c.current()
}

func (c *Client) current() *spotifyLib.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiClient
}

// renewTokenIfNeeded recreates the underlying client when the app token
// expires within five minutes.
func (c *Client) renewTokenIfNeeded(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "SpotifyClient.renewTokenIfNeeded")
	defer span.End()

	spotifyToken, err := c.current().Token()
	if err != nil {
		return fmt.Errorf("apiClient.Token: %w", err)
	}
	if time.Until(spotifyToken.Expiry) > time.Minute*5 {
		return nil
	}

	token, err := c.config.Token(ctx)
	if err != nil {
		return fmt.Errorf("config.Token: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)

	c.mu.Lock()
	c.apiClient = spotifyLib.New(httpClient)
	c.mu.Unlock()

	span.AddEvent("Token refreshed")

	return nil
}

func (c *Client) Search(ctx context.Context, query string, t spotifyLib.SearchType, opts ...spotifyLib.RequestOption) (*spotifyLib.SearchResult, error) {
	return c.api(ctx).Search(ctx, query, t, opts...)
}

func (c *Client) GetArtist(ctx context.Context, id spotifyLib.ID) (*spotifyLib.FullArtist, error) {
	return c.api(ctx).GetArtist(ctx, id)
}

func (c *Client) GetRelatedArtists(ctx context.Context, id spotifyLib.ID) ([]spotifyLib.FullArtist, error) {
	return c.api(ctx).GetRelatedArtists(ctx, id)
}

func (c *Client) GetArtistsTopTracks(ctx context.Context, id spotifyLib.ID, country string) ([]spotifyLib.FullTrack, error) {
	return c.api(ctx).GetArtistsTopTracks(ctx, id, country)
}
