// Copyright (c) 2023 Contributors to the Eclipse Foundation
//
// See the NOTICE file(s) distributed with this work for additional
// information regarding copyright ownership.
//
// This program and the accompanying materials are made available under the
// terms of the Eclipse Public License 2.0 which is available at
// https://www.eclipse.org/legal/epl-2.0, or the Apache License, Version 2.0
// which is available at https://www.apache.org/licenses/LICENSE-2.0.
//
// SPDX-License-Identifier: EPL-2.0 OR Apache-2.0

package mqtt

import (
	"strings"
	"sync"

	"github.com/eclipse-kanto/suota-update-manager/api"
	"github.com/eclipse-kanto/suota-update-manager/api/types"
	"github.com/eclipse-kanto/suota-update-manager/api/util"
	"github.com/eclipse-kanto/suota-update-manager/logger"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	suffixCommand  = "/command"
	suffixCallback = "/callback"

	defaultLibraryTopic = "suota"
)

type libraryClient struct {
	*mqttClient

	sessionsLock sync.Mutex
	sessions     map[string]*librarySession
}

type librarySession struct {
	client   *libraryClient
	id       string
	address  string
	prefix   string
	callback api.LibraryCallback

	closeOnce sync.Once
}

// NewLibraryClient instantiates a client for remote updater libraries reachable below the given topic.
func NewLibraryClient(topic string, config *ConnectionConfig) (api.LibraryClient, error) {
	topic = strings.Trim(topic, "/")
	if topic == "" {
		topic = defaultLibraryTopic
	}
	client := &libraryClient{sessions: map[string]*librarySession{}}
	mqttClient, err := newMQTTClient(topic, config, client.onConnect)
	if err != nil {
		return nil, err
	}
	client.mqttClient = mqttClient
	return client, nil
}

// Connect connects the client to the MQTT broker.
func (client *libraryClient) Connect() error {
	return client.connect()
}

// Disconnect closes all open sessions and disconnects the client from the MQTT broker.
func (client *libraryClient) Disconnect() {
	client.sessionsLock.Lock()
	sessions := make([]*librarySession, 0, len(client.sessions))
	for _, session := range client.sessions {
		sessions = append(sessions, session)
	}
	client.sessionsLock.Unlock()

	for _, session := range sessions {
		if err := session.Close(); err != nil {
			logger.WarnErr(err, "[%s] error closing updater library session", session.address)
		}
	}
	client.disconnect()
}

// NewSession subscribes for the callbacks of the updater library serving the device of the given handle.
func (client *libraryClient) NewSession(handle api.DeviceHandle, callback api.LibraryCallback) (api.UpdateLibrary, error) {
	address := util.NormalizeAddress(handle.Address())
	session := &librarySession{
		client:   client,
		id:       uuid.New().String(),
		address:  address,
		prefix:   client.topic("/" + util.AddressToTopic(address)),
		callback: callback,
	}

	client.sessionsLock.Lock()
	if _, ok := client.sessions[session.prefix]; ok {
		client.sessionsLock.Unlock()
		return nil, types.NewUpdateErrorf(types.ErrorBusy, "updater library session for %s is already open", address)
	}
	client.sessions[session.prefix] = session
	client.sessionsLock.Unlock()

	if err := client.subscribe(client.handleCallback, session.prefix+suffixCallback); err != nil {
		client.removeSession(session)
		return nil, errors.Wrapf(err, "cannot open updater library session for %s", address)
	}
	logger.Debug("[%s] updater library session %s opened", address, session.id)
	return session, nil
}

// resubscribe the callback topics of the open sessions after a reconnect
func (client *libraryClient) onConnect(mqttClient pahomqtt.Client) {
	client.sessionsLock.Lock()
	topics := make([]string, 0, len(client.sessions))
	for prefix := range client.sessions {
		topics = append(topics, prefix+suffixCallback)
	}
	client.sessionsLock.Unlock()

	if len(topics) == 0 {
		return
	}
	if err := client.subscribe(client.handleCallback, topics...); err != nil {
		logger.ErrorErr(err, "error resubscribing for updater library callbacks")
	}
}

func (client *libraryClient) removeSession(session *librarySession) {
	client.sessionsLock.Lock()
	defer client.sessionsLock.Unlock()

	if client.sessions[session.prefix] == session {
		delete(client.sessions, session.prefix)
	}
}

func (client *libraryClient) handleCallback(mqttClient pahomqtt.Client, message pahomqtt.Message) {
	prefix := strings.TrimSuffix(message.Topic(), suffixCallback)
	client.sessionsLock.Lock()
	session, ok := client.sessions[prefix]
	client.sessionsLock.Unlock()
	if !ok {
		logger.Debug("no updater library session for topic '%s', dropping callback", message.Topic())
		return
	}

	callback := &types.LibraryCallbackMessage{}
	if _, err := types.FromEnvelope(message.Payload(), callback); err != nil {
		logger.ErrorErr(err, "[%s] cannot parse updater library callback", session.address)
		return
	}
	session.dispatch(callback)
}

func (session *librarySession) dispatch(message *types.LibraryCallbackMessage) {
	logger.Trace("[%s] received updater library callback '%s'", session.address, message.Callback)
	switch message.Callback {
	case types.LibraryCallbackReady:
		session.callback.OnDeviceReady()
	case types.LibraryCallbackProgress:
		session.callback.OnUploadProgress(message.Percent)
	case types.LibraryCallbackLog:
		session.callback.OnSuotaLog(message.State, message.LogType, message.Message)
	case types.LibraryCallbackPendingReboot:
		session.callback.OnPendingReboot(message.Reason)
	case types.LibraryCallbackSuccess:
		session.callback.OnSuccess(message.TotalElapsedSeconds, message.ImageUploadElapsedSeconds)
	case types.LibraryCallbackFailure:
		session.callback.OnFailure(message.Code)
	case types.LibraryCallbackConnection:
		session.callback.OnConnectionStateChange(message.Connected)
	default:
		logger.Warn("[%s] unknown updater library callback '%s'", session.address, message.Callback)
	}
}

func (session *librarySession) Connect() error {
	return session.send(&types.LibraryCommand{Command: types.LibraryCommandConnect})
}

func (session *librarySession) Initialize(params types.SuotaParameters) error {
	return session.send(&types.LibraryCommand{Command: types.LibraryCommandConfigure, Parameters: &params})
}

func (session *librarySession) StartUpdate(firmware *types.FirmwareFile) error {
	return session.send(&types.LibraryCommand{Command: types.LibraryCommandStart, Firmware: firmware})
}

func (session *librarySession) Abort() error {
	return session.send(&types.LibraryCommand{Command: types.LibraryCommandAbort})
}

// Close requests the remote updater library to disconnect and stops receiving its callbacks.
func (session *librarySession) Close() error {
	var err error
	session.closeOnce.Do(func() {
		session.client.removeSession(session)
		if sendErr := session.send(&types.LibraryCommand{Command: types.LibraryCommandDisconnect}); sendErr != nil {
			err = sendErr
		}
		if unsubErr := session.client.unsubscribe(session.prefix + suffixCallback); unsubErr != nil && err == nil {
			err = unsubErr
		}
		logger.Debug("[%s] updater library session %s closed", session.address, session.id)
	})
	return err
}

func (session *librarySession) send(command *types.LibraryCommand) error {
	payload, err := types.ToEnvelope(session.id, command)
	if err != nil {
		return errors.Wrapf(err, "cannot encode '%s' command", command.Command)
	}
	logger.Debug("[%s] sending '%s' command", session.address, command.Command)
	if err := session.client.publish(session.prefix+suffixCommand, false, payload); err != nil {
		return types.NewUpdateErrorf(types.ErrorLibraryFailure, "%s failed: %v", command.Command, err)
	}
	return nil
}
