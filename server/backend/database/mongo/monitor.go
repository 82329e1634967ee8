/*
 * Copyright 2026 The Folio Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package mongo

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/event"
	"go.uber.org/zap"

	"github.com/folio-team/folio/server/logging"
)

// commandMonitor logs the commands sent to MongoDB. Commands slower than the
// threshold are logged as warnings, the others at debug level.
type commandMonitor struct {
	logger    logging.Logger
	threshold time.Duration

	// collections maps request IDs of running commands to their collection.
	collections sync.Map
}

func newCommandMonitor(logger logging.Logger, threshold time.Duration) *commandMonitor {
	return &commandMonitor{
		logger:    logger,
		threshold: threshold,
	}
}

// CommandMonitor returns the driver hooks of the monitor.
func (m *commandMonitor) CommandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Started:   m.started,
		Succeeded: m.succeeded,
		Failed:    m.failed,
	}
}

func (m *commandMonitor) started(_ context.Context, evt *event.CommandStartedEvent) {
	coll, _ := evt.Command.Lookup(evt.CommandName).StringValueOK()
	m.collections.Store(evt.RequestID, coll)

	if m.logger.Desugar().Core().Enabled(zap.DebugLevel) {
		m.logger.Debugw("mongo command started",
			"request", evt.RequestID,
			"command", evt.CommandName,
			"collection", coll,
		)
	}
}

func (m *commandMonitor) succeeded(_ context.Context, evt *event.CommandSucceededEvent) {
	coll := m.collection(evt.RequestID)

	if m.threshold > 0 && evt.Duration > m.threshold {
		m.logger.Warnw("slow mongo command",
			"request", evt.RequestID,
			"command", evt.CommandName,
			"collection", coll,
			"duration", evt.Duration,
		)
		return
	}

	m.logger.Debugw("mongo command succeeded",
		"request", evt.RequestID,
		"command", evt.CommandName,
		"collection", coll,
		"duration", evt.Duration,
	)
}

func (m *commandMonitor) failed(_ context.Context, evt *event.CommandFailedEvent) {
	m.logger.Warnw("mongo command failed",
		"request", evt.RequestID,
		"command", evt.CommandName,
		"collection", m.collection(evt.RequestID),
		"duration", evt.Duration,
		"failure", evt.Failure,
	)
}

func (m *commandMonitor) collection(requestID int64) string {
	coll, ok := m.collections.LoadAndDelete(requestID)
	if !ok {
		return ""
	}
	return coll.(string)
}
