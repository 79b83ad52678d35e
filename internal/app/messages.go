// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the operator-facing messages shared by the service
// layer and the command.
//
// Keeping them in one place keeps the wording identical between the log
// output and the tests that look for it.
package app

const (
	// MsgConfigRootNotFound is logged when the sessions directory is
	// unknown or does not exist. It ends the run.
	MsgConfigRootNotFound = "Could not find the SecureCRT session path. Ensure that SecureCRT is installed on the target."

	// MsgV1DecodeFailed is logged when a v1 password decrypts to a buffer
	// without a terminator.
	MsgV1DecodeFailed = "It was not possible to decode one of the v1 passwords successfully, please double check the results!"

	// MsgV2PassphraseSet is logged when a v2 password does not verify under
	// the configured passphrase.
	MsgV2PassphraseSet = "It seems the user set a configuration password when installing SecureCRT!"

	// MsgV2ProvidePassphrase follows MsgV2PassphraseSet.
	MsgV2ProvidePassphrase = "If you know the configuration password, please provide it via the -passphrase flag (or APP_PASSPHRASE) and then run again."

	// MsgNoSessions is logged when the sessions directory holds no session
	// files.
	MsgNoSessions = "no sessions found"

	// MsgLootStored is logged with the path of the written loot file.
	MsgLootStored = "session info stored in loot"
)
