// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package services

import (
	"fmt"
	"reflect"
)

// Service must be implemented by all Services
type Service interface {
	Start() error
	Stop() error
}

// ServiceRegistry is a structure to manage the long running services
// of the offences node.
type ServiceRegistry struct {
	services     map[reflect.Type]Service // map of types to service instances
	serviceTypes []reflect.Type           // all known service types, in registration order
	logger       Logger
}

// NewServiceRegistry creates an empty registry
func NewServiceRegistry(logger Logger) *ServiceRegistry {
	return &ServiceRegistry{
		services: make(map[reflect.Type]Service),
		logger:   logger,
	}
}

// RegisterService stores a new service in the map. If a service of that type has been seen
// already, the service is ignored.
func (s *ServiceRegistry) RegisterService(service Service) {
	kind := reflect.TypeOf(service)
	if _, exists := s.services[kind]; exists {
		s.logger.Warnf("Tried to add service type %s that has already been seen", kind)
		return
	}
	s.services[kind] = service
	s.serviceTypes = append(s.serviceTypes, kind)
}

// StartAll calls `Service.Start()` for all registered services in registration order.
// If a service fails to start, the services already started are stopped
// and the start error is returned.
func (s *ServiceRegistry) StartAll() (err error) {
	s.logger.Infof("Starting services: %v", s.serviceTypes)
	for i, typ := range s.serviceTypes {
		s.logger.Debugf("Starting service %s", typ)
		err = s.services[typ].Start()
		if err == nil {
			continue
		}

		for j := i - 1; j >= 0; j-- {
			started := s.serviceTypes[j]
			stopErr := s.services[started].Stop()
			if stopErr != nil {
				s.logger.Errorf("Error stopping service %s: %s", started, stopErr)
			}
		}
		return fmt.Errorf("cannot start service %s: %w", typ, err)
	}
	s.logger.Debug("All services started.")
	return nil
}

// StopAll calls `Service.Stop()` for all registered services in reverse
// registration order.
func (s *ServiceRegistry) StopAll() {
	s.logger.Infof("Stopping services: %v", s.serviceTypes)
	for i := len(s.serviceTypes) - 1; i >= 0; i-- {
		typ := s.serviceTypes[i]
		s.logger.Debugf("Stopping service %s", typ)
		err := s.services[typ].Stop()
		if err != nil {
			s.logger.Errorf("Error stopping service %s: %s", typ, err)
		}
	}
	s.logger.Debug("All services stopped.")
}

// Get retrieves the registered service of the same type as srvc.
func (s *ServiceRegistry) Get(srvc interface{}) Service {
	if reflect.TypeOf(srvc).Kind() != reflect.Ptr {
		s.logger.Warnf("expected a pointer but got %T", srvc)
		return nil
	}
	e := reflect.ValueOf(srvc)

	if s, ok := s.services[e.Type()]; ok {
		return s
	}
	s.logger.Warnf("unknown service type %T", srvc)
	return nil
}
