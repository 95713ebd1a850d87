// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Iconmig migrates string icon props on JSX components to icon elements.
//
// Usage:
//
//	iconmig [-diff] [-l] [-config file] [-pkg path] [-j n] [-v] path...
//
// Iconmig rewrites elements of the configured components, such as
//
//	<Button icon="ic_basic_chevron_left" color="red" />
//
// into
//
//	<Button icon={<ChevronLeft color="red" size={20} />} />
//
// and imports the new icon components from the icon package:
//
//	import { ChevronLeft } from "@scope/icon-package";
//
// Each path is a file or a directory. Directories are searched for
// .tsx, .jsx and .js files, skipping node_modules, dist, build and
// any directory whose name begins with a dot.
//
// By default, iconmig writes changes back to the files.
// The -diff flag causes iconmig to print a diff of the intended changes instead,
// and the -l flag causes it to list the files that would change.
//
// # Icon values
//
// An icon value may be a string or a template literal without
// substitutions, naming a legacy icon:
//
//	icon="ic_basic_home"
//	icon={`ic_home`}
//
// The component name is the legacy name with the longest configured prefix
// removed and each word, separated by _ or -, capitalized: ic_basic_home
// becomes Home, and ic_outline_fill_info becomes FillInfo.
//
// An icon value may also be an object literal with an icon key. Its other
// members become props of the icon element:
//
//	icon={{ icon: "ic_star", color: theme.gold, ...rest }}
//
// becomes
//
//	icon={<Star color={theme.gold} {...rest} size={20} />}
//
// Props of the outer element named in the component's transfer list
// (color by default), and size, move onto the icon element unless the
// object already sets them. Icons get size={20} unless they have a size
// or the component is exempt from the default size.
//
// # Review
//
// Icon values that are already elements are left alone. Any other value
// iconmig cannot rewrite, such as an arbitrary expression or a name that
// maps to no component, is left exactly as written and reported on
// standard error as
//
//	file:line:col: Component: problem: value
//
// and the file gets a comment beginning with the review marker
// (icon-migration:) at its top, unless it already contains the marker.
// Iconmig exits with status 1 if any file needs review or could not be
// processed, and with status 2 for a malformed command line.
//
// Components nested inside the attributes of other components are
// rewritten in the same run. Running iconmig again on its own output
// changes nothing.
//
// # Configuration
//
// The -config flag names a YAML file overriding the built-in configuration:
//
//	package: "@scope/icon-package"
//	prefixes: [ic_basic_outline_, ic_outline_, ic_basic_, ic_]
//	defaultSize: "20"
//	marker: "icon-migration:"
//	comment: "icon-migration: some icon props in this file could not be migrated automatically; look for remaining string icon props."
//	extensions: [.tsx, .jsx, .js]
//	targets:
//	  - name: Button
//	    transfer: [color]
//	  - name: NavBar.Icon
//	    transfer: [color]
//	    noDefaultSize: true
//
// Keys left out keep their built-in values. The -pkg flag overrides package.
package main
