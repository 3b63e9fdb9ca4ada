// Package storage manages the download directory.
//
// Images are written through a temporary file in the same directory and
// renamed into place only after the whole body has been copied, so a failed
// or interrupted write never leaves a partial {id}.png behind. Remove deletes
// whatever is left for an ID, which is how failed fetches are discarded.
//
// Usage:
//
//	manager, err := storage.NewManager("downloaded_images")
//	if err != nil {
//	    return err
//	}
//
//	if err := manager.SaveImage(body, 42); err != nil {
//	    _ = manager.Remove(42)
//	}
package storage
