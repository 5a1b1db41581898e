// Package session holds the per-process lifecycle flags of a plugin
// instance. Nothing here is persisted.
package session

// State 归单个插件实例所有，只在宿主的更新线程上读写。
//
// State is owned by one plugin instance and only touched from the host's
// update thread. Each field has a single writer:
//   - LoggedInOnce, CurrentlyHopping: the zoom policy
//   - InOverlayManagingMode: the plugin itself (drag hotkey, focus, game
//     state and shutdown)
type State struct {
	// LoggedInOnce becomes true at the first LOGGED_IN and stays true.
	LoggedInOnce bool
	// CurrentlyHopping is true between HOPPING and the next LOGGED_IN.
	CurrentlyHopping bool
	// InOverlayManagingMode is true while the drag hotkey is held.
	InOverlayManagingMode bool
}
