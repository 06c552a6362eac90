package google

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"

	"github.com/teemow/gdrive/internal/config"
	"github.com/teemow/gdrive/internal/errfmt"
)

// storedCredentials is the on-disk credential format.
type storedCredentials struct {
	ClientID     string        `json:"client_id"`
	ClientSecret string        `json:"client_secret"`
	Scopes       []string      `json:"scopes"`
	Token        *oauth2.Token `json:"token"`
}

// StoredInfo describes locally stored credentials without exposing secrets.
type StoredInfo struct {
	Path            string   `json:"path"`
	Scopes          []string `json:"scopes"`
	HasRefreshToken bool     `json:"has_refresh_token"`
	ClientID        string   `json:"client_id"`
}

// StoredCredentialsInfo reports details about the stored credentials file.
// It returns nil without error when no credentials are stored; a present but
// unreadable file is an auth failure.
func StoredCredentialsInfo(cfg config.Config) (*StoredInfo, error) {
	stored, err := readCredentials(cfg.CredentialsFile)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &StoredInfo{
		Path:            cfg.CredentialsFile,
		Scopes:          stored.Scopes,
		HasRefreshToken: stored.Token != nil && stored.Token.RefreshToken != "",
		ClientID:        stored.ClientID,
	}, nil
}

// LoadCredentials loads stored credentials and returns a refreshing token
// source. When write is true the stored scopes must include full Drive
// access. Every failure is an errfmt.AuthError.
func LoadCredentials(ctx context.Context, cfg config.Config, write bool) (oauth2.TokenSource, error) {
	stored, err := readCredentials(cfg.CredentialsFile)
	if os.IsNotExist(err) {
		return nil, errfmt.Authf("no local OAuth credentials found at %s; run `gdrive auth login --client-secret <path>` first", cfg.CredentialsFile)
	}
	if err != nil {
		return nil, err
	}

	if write && !slices.Contains(stored.Scopes, DriveScope) {
		return nil, errfmt.Authf("stored credentials are readonly; run `gdrive auth login` again without --readonly")
	}

	conf := &oauth2.Config{
		ClientID:     stored.ClientID,
		ClientSecret: stored.ClientSecret,
		Endpoint:     oauthgoogle.Endpoint,
		Scopes:       stored.Scopes,
	}

	source := conf.TokenSource(ctx, stored.Token)
	token, err := source.Token()
	if err != nil {
		return nil, errfmt.AuthWrap(err, "failed to refresh credentials: %v", err)
	}

	// Persist the rotated token so the next invocation skips the refresh.
	if token.AccessToken != stored.Token.AccessToken {
		stored.Token = token
		if err := writeCredentials(cfg, stored); err != nil {
			return nil, err
		}
	}

	return oauth2.ReuseTokenSource(token, source), nil
}

// HTTPClient returns an authenticated HTTP client for Google APIs.
func HTTPClient(ctx context.Context, cfg config.Config, write bool) (*http.Client, error) {
	source, err := LoadCredentials(ctx, cfg, write)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, source), nil
}

// LoginOptions configures the interactive OAuth login flow.
type LoginOptions struct {
	// ClientSecretPath is the OAuth client secret JSON downloaded from the
	// Google Cloud console.
	ClientSecretPath string

	// Readonly requests the readonly Drive scope only.
	Readonly bool

	// LaunchBrowser opens the authorization URL in the default browser.
	LaunchBrowser bool

	// In supplies the authorization code (stdin in the CLI).
	In io.Reader

	// Out receives flow instructions. Never stdout in the CLI; results only.
	Out io.Writer
}

// Login runs the OAuth authorization-code flow and stores the resulting
// credentials. It returns the path they were written to.
func Login(ctx context.Context, cfg config.Config, opts LoginOptions) (string, error) {
	secret, err := os.ReadFile(opts.ClientSecretPath)
	if err != nil {
		return "", errfmt.Authf("failed to read client secret %s: %v", opts.ClientSecretPath, err)
	}

	conf, err := oauthgoogle.ConfigFromJSON(secret, ScopesFor(!opts.Readonly)...)
	if err != nil {
		return "", errfmt.Authf("invalid client secret file %s: %v", opts.ClientSecretPath, err)
	}
	if conf.RedirectURL == "" {
		conf.RedirectURL = "urn:ietf:wg:oauth:2.0:oob"
	}

	authURL := conf.AuthCodeURL("state", oauth2.AccessTypeOffline)
	fmt.Fprintf(opts.Out, "Visit the following URL to authorize access:\n\n  %s\n\n", authURL)
	if opts.LaunchBrowser {
		openBrowser(authURL)
	}

	fmt.Fprint(opts.Out, "Enter authorization code: ")
	code, err := readLine(opts.In)
	if err != nil {
		return "", errfmt.Authf("failed to read authorization code: %v", err)
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return "", errfmt.AuthWrap(err, "failed to exchange authorization code: %v", err)
	}

	stored := &storedCredentials{
		ClientID:     conf.ClientID,
		ClientSecret: conf.ClientSecret,
		Scopes:       ScopesFor(!opts.Readonly),
		Token:        token,
	}
	if err := writeCredentials(cfg, stored); err != nil {
		return "", err
	}

	return cfg.CredentialsFile, nil
}

func readCredentials(path string) (*storedCredentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, errfmt.Authf("failed to read credentials file %s: %v", path, err)
	}

	var stored storedCredentials
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errfmt.Authf("credentials file %s is corrupt: %v", path, err)
	}
	if stored.Token == nil {
		return nil, errfmt.Authf("credentials file %s has no token; run `gdrive auth login` again", path)
	}

	return &stored, nil
}

func writeCredentials(cfg config.Config, stored *storedCredentials) error {
	if err := os.MkdirAll(filepath.Dir(cfg.CredentialsFile), 0o700); err != nil {
		return errfmt.Authf("failed to create credentials directory: %v", err)
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return errfmt.Authf("failed to encode credentials: %v", err)
	}

	if err := os.WriteFile(cfg.CredentialsFile, data, 0o600); err != nil {
		return errfmt.Authf("failed to write credentials file %s: %v", cfg.CredentialsFile, err)
	}

	return nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("empty authorization code")
	}
	return line, nil
}

// openBrowser makes a best-effort attempt to open the URL; the URL is always
// printed as well, so failure here is not an error.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
