// Package platform wraps the filesystem operations shared by the link
// resolver, the link restorer and the installer: inspecting and creating
// symbolic links, and copying files and directory trees with links
// dereferenced.
package platform
