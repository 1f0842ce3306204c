//go:build windows

package app

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modshlwapi            = windows.NewLazySystemDLL("shlwapi.dll")
	procAssocQueryStringW = modshlwapi.NewProc("AssocQueryStringW")
)

const (
	// Fall back to the "*" subkey when the extension has no value.
	assocfInitDefaultToStar = 0x00000004
	// Fail with E_POINTER instead of truncating the output.
	assocfNoTruncate = 0x00000020

	// The command string associated with a Shell verb.
	assocstrCommand = 1

	sOK    = 0x00000000
	sFalse = 0x00000001
	// E_POINTER is returned with ASSOCF_NOTRUNCATE when the buffer is too small.
	ePointer = 0x80004003
	// HRESULT_FROM_WIN32(ERROR_NO_ASSOCIATION)
	hrNoAssociation = 0x80070483
	// HRESULT_FROM_WIN32(ERROR_FILE_NOT_FOUND)
	hrFileNotFound = 0x80070002
)

// ShellStore queries the Windows shell association database through
// AssocQueryStringW for the default verb's command.
type ShellStore struct{}

// NewShellStore returns the system association store.
func NewShellStore() *ShellStore { return &ShellStore{} }

// QueryLength implements AssociationStore. The reported length includes the
// terminating NUL.
func (s *ShellStore) QueryLength(key string) (int, error) {
	var n uint32
	hr, err := assocQueryString(key, nil, &n)
	if err != nil {
		return 0, err
	}
	switch hr {
	case sOK, sFalse:
		return int(n), nil
	default:
		return 0, shellStoreError(key, hr)
	}
}

// QueryFill implements AssociationStore.
func (s *ShellStore) QueryFill(key string, buf []uint16) (int, error) {
	if len(buf) == 0 {
		return 0, ErrBufferTooSmall
	}
	n := uint32(len(buf))
	hr, err := assocQueryString(key, &buf[0], &n)
	if err != nil {
		return 0, err
	}
	switch hr {
	case sOK:
		return int(n), nil
	case ePointer:
		return int(n), ErrBufferTooSmall
	default:
		return 0, shellStoreError(key, hr)
	}
}

func assocQueryString(key string, out *uint16, n *uint32) (uint32, error) {
	pszAssoc, err := windows.UTF16PtrFromString(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, key)
	}
	if err := procAssocQueryStringW.Find(); err != nil {
		return 0, fmt.Errorf("load AssocQueryStringW: %w", err)
	}
	r, _, _ := procAssocQueryStringW.Call(
		uintptr(assocfInitDefaultToStar|assocfNoTruncate),
		uintptr(assocstrCommand),
		uintptr(unsafe.Pointer(pszAssoc)),
		0,
		uintptr(unsafe.Pointer(out)),
		uintptr(unsafe.Pointer(n)),
	)
	return uint32(r), nil
}

func shellStoreError(key string, hr uint32) error {
	storeErr := &StoreError{Key: key, Code: hr}
	if hr == hrNoAssociation || hr == hrFileNotFound {
		return fmt.Errorf("%w: %w", ErrNoAssociation, storeErr)
	}
	return storeErr
}

// DefaultStore returns the configured table, if any, in front of the system store.
func DefaultStore(table *TableStore) AssociationStore {
	if table == nil || table.Len() == 0 {
		return NewShellStore()
	}
	return NewChainStore(table, NewShellStore())
}
