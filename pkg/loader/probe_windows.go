//go:build windows

package loader

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	mailClientsKey = `SOFTWARE\Clients\Mail`
	dllPathExValue = "DLLPathEx"
	systemMAPIDLL  = "mapi32.dll"
)

// OutlookProbe finds the default mail client's extended MAPI library
// through HKLM\SOFTWARE\Clients\Mail. For Outlook this is olmapi32.dll.
type OutlookProbe struct{}

// Locate reads the default client and its DLLPathEx value.
func (OutlookProbe) Locate() (Installation, error) {
	clients, err := registry.OpenKey(registry.LOCAL_MACHINE, mailClientsKey, registry.QUERY_VALUE)
	if err != nil {
		return Installation{}, fmt.Errorf("%w: open %s: %w", ErrNotInstalled, mailClientsKey, err)
	}
	defer clients.Close()

	client, _, err := clients.GetStringValue("")
	if err != nil || client == "" {
		return Installation{}, fmt.Errorf("%w: no default mail client", ErrNotInstalled)
	}

	key, err := registry.OpenKey(registry.LOCAL_MACHINE, mailClientsKey+`\`+client, registry.QUERY_VALUE)
	if err != nil {
		return Installation{}, fmt.Errorf("%w: open client %q: %w", ErrNotInstalled, client, err)
	}
	defer key.Close()

	path, valtype, err := key.GetStringValue(dllPathExValue)
	if err != nil {
		return Installation{}, fmt.Errorf("%w: client %q has no %s: %w", ErrNotInstalled, client, dllPathExValue, err)
	}
	if valtype == registry.EXPAND_SZ {
		if path, err = registry.ExpandString(path); err != nil {
			return Installation{}, fmt.Errorf("%w: expand %s: %w", ErrNotInstalled, dllPathExValue, err)
		}
	}
	if err := checkFile(path); err != nil {
		return Installation{}, err
	}
	return Installation{Provider: ProviderOutlook, Path: path, Client: client}, nil
}

// SystemProbe finds the mapi32.dll stub in the system directory.
type SystemProbe struct{}

// Locate checks for mapi32.dll in GetSystemDirectory.
func (SystemProbe) Locate() (Installation, error) {
	dir, err := windows.GetSystemDirectory()
	if err != nil {
		return Installation{}, fmt.Errorf("%w: system directory: %w", ErrNotInstalled, err)
	}
	path := filepath.Join(dir, systemMAPIDLL)
	if err := checkFile(path); err != nil {
		return Installation{}, err
	}
	return Installation{Provider: ProviderSystem, Path: path}, nil
}

func platformProbe(preferOutlook bool) Probe {
	if preferOutlook {
		return ChainProbe{OutlookProbe{}, SystemProbe{}}
	}
	return SystemProbe{}
}
