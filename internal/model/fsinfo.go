// SPDX-License-Identifier: MIT
//
// This file defines the FSInfo struct, which stores file system metadata.
//
// The file path connects a parsed in-memory manifest back to its physical
// source on disk. It is used for error reporting (diagnostics can name the
// exact file that declared the problem) and for resolving sidecar signature
// files, which are declared relative to the manifest that references them.
package model

type FSInfo struct {
	FilePath string
}

func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
	}
}
