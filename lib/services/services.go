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

// ServiceRegistry is a structure to manage core system Services
type ServiceRegistry struct {
	services     map[reflect.Type]Service
	serviceTypes []reflect.Type // registration order, services start in this order
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
// it is not registered again.
func (s *ServiceRegistry) RegisterService(service Service) {
	kind := reflect.TypeOf(service)
	if _, exists := s.services[kind]; exists {
		s.logger.Warnf("Tried to add service type %s that has already been seen", kind)
		return
	}
	s.services[kind] = service
	s.serviceTypes = append(s.serviceTypes, kind)
}

// StartAll calls `Service.Start()` for all registered Services, in
// registration order. If a service fails to start, the services already
// started are stopped and the error is returned.
func (s *ServiceRegistry) StartAll() error {
	s.logger.Infof("Starting Services: %v", s.serviceTypes)
	for i, typ := range s.serviceTypes {
		s.logger.Debugf("Starting service %s", typ)
		err := s.services[typ].Start()
		if err != nil {
			s.stop(s.serviceTypes[:i])
			return fmt.Errorf("cannot start service %s: %w", typ, err)
		}
	}
	s.logger.Debugf("%d services started", len(s.serviceTypes))
	return nil
}

// StopAll calls `Service.Stop()` for all registered Services, in reverse
// registration order.
func (s *ServiceRegistry) StopAll() {
	s.logger.Infof("Stopping Services: %v", s.serviceTypes)
	s.stop(s.serviceTypes)
	s.logger.Debugf("%d services stopped", len(s.serviceTypes))
}

func (s *ServiceRegistry) stop(types []reflect.Type) {
	for i := len(types) - 1; i >= 0; i-- {
		typ := types[i]
		s.logger.Debugf("Stopping service %s", typ)
		err := s.services[typ].Stop()
		if err != nil {
			s.logger.Errorf("Error stopping service %s: %s", typ, err)
		}
	}
}

// Get retrieves a service and stores a reference to it in the passed in `srvc`
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
