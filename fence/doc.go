// Package fence binds the libsync sync-file API.
//
// sync_wait, sync_merge, sync_file_info and sync_file_info_free are resolved
// from libsync.so on first use. Without an implementation Wait returns 0
// immediately and never touches the descriptor, Merge fails with -1 since no
// merged fence can be produced, FileInfo returns nil and FileInfoFree does
// nothing.
package fence
