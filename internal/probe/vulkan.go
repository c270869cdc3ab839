// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/labfont/labconf/internal/env"
	"github.com/labfont/labconf/pkgs/versions"
	"github.com/qiniu/x/log"
)

// SDKEnvVar overrides Vulkan SDK discovery.
const SDKEnvVar = "VULKAN_SDK"

// DetectVulkan locates the Vulkan SDK.
//
// VULKAN_SDK wins when it names a directory. Otherwise each candidate root
// for the host OS is scanned in order, and the greatest version
// subdirectory by plain string order is taken; "1.3.0" beats "1.10.0". On
// macOS and Linux that version must contain the platform sub-directory, or
// the scan moves on to the next root without trying older versions.
func DetectVulkan(_ context.Context, h *env.Host) (Result, error) {
	if dir := h.Getenv(SDKEnvVar); dir != "" && isDir(dir) {
		return FoundAt(GPUSDK, dir), nil
	}

	for _, root := range vulkanRoots(h) {
		latest := latestSubdir(root)
		if latest == "" {
			continue
		}
		dir := filepath.Join(root, latest)
		if h.OS == env.Windows {
			return FoundAt(GPUSDK, dir), nil
		}
		dir = filepath.Join(dir, vulkanPlatformDir(h.OS))
		if isDir(dir) {
			return FoundAt(GPUSDK, dir), nil
		}
		log.Debugf("probe: %s has no %s sub-directory", filepath.Join(root, latest), vulkanPlatformDir(h.OS))
	}
	return NotFound(GPUSDK), nil
}

func vulkanRoots(h *env.Host) []string {
	var roots []string
	switch h.OS {
	case env.Windows:
		pf := h.ProgramFiles()
		return []string{
			filepath.Join(pf, "VulkanSDK"),
			filepath.Join(pf, "LunarG", "VulkanSDK"),
		}
	case env.Darwin:
		if h.Home != "" {
			roots = append(roots,
				filepath.Join(h.Home, "VulkanSDK"),
				filepath.Join(h.Home, "bin", "VulkanSDK"),
			)
		}
		return append(roots, h.SystemPath("/usr/local/VulkanSDK"))
	case env.Linux:
		if h.Home != "" {
			roots = append(roots, filepath.Join(h.Home, "VulkanSDK"))
		}
		return append(roots, h.SystemPath("/usr/local/VulkanSDK"))
	}
	return nil
}

func vulkanPlatformDir(goos string) string {
	if goos == env.Darwin {
		return "macOS"
	}
	return "x86_64"
}

// latestSubdir returns the lexicographically greatest directory under root.
func latestSubdir(root string) string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return ""
	}
	var names []string
	for _, e := range entries {
		if isDir(filepath.Join(root, e.Name())) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	latest := names[len(names)-1]
	if natural := versions.Latest(names); natural != latest {
		log.Warnf("probe: picked %s under %s by string order; %s looks newer", latest, root, natural)
	}
	return latest
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
