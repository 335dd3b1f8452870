// Command factorydemo renders the widget families produced by the uifactory
// package.
//
// Run without arguments it showcases the MacOS family, prints two blank lines,
// then showcases the Windows family.
//
// Flags:
//
//	--platform  family to showcase; repeatable, "auto" picks the host platform
//	            (or CREATIONAL_PLATFORMS=macos,windows)
//	--config    YAML file providing platforms (or CREATIONAL_CONFIG)
//	--verbose   log factory selection (or CREATIONAL_VERBOSE=true)
package main
