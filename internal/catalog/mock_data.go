package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func oldPrice(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "Fones de Ouvido", Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=200&auto=format&fit=crop", Slug: "fones-de-ouvido"},
		{ID: "2", Name: "Joysticks", Image: "https://images.unsplash.com/photo-1486572788966-cfd3df1f5b42?q=80&w=200&auto=format&fit=crop", Slug: "joysticks"},
		{ID: "3", Name: "Games Portáteis", Image: "https://images.unsplash.com/photo-1599409636295-e3cf3538f212?q=80&w=200&auto=format&fit=crop", Slug: "games-portateis"},
		{ID: "4", Name: "Carregadores", Image: "https://images.unsplash.com/photo-1583863788434-e62bd6bf5ebd?q=80&w=200&auto=format&fit=crop", Slug: "carregadores"},
		{ID: "5", Name: "Cabos USB", Image: "https://images.unsplash.com/photo-1601784551446-20c9e07cdbdb?q=80&w=200&auto=format&fit=crop", Slug: "cabos-usb"},
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Fone de Ouvido Bluetooth XYZ", Price: price("249.90"), OldPrice: oldPrice("299.90"), Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=300&auto=format&fit=crop", Category: "fones-de-ouvido", ShortDescription: "Fone bluetooth com cancelamento de ruído e bateria de longa duração."},
		{ID: "2", Name: "Joystick para PlayStation 5", Price: price("399.90"), Image: "https://images.unsplash.com/photo-1486572788966-cfd3df1f5b42?q=80&w=300&auto=format&fit=crop", Category: "joysticks", ShortDescription: "Controle sem fio com feedback tátil e gatilhos adaptáveis."},
		{ID: "3", Name: "Console Portátil Retro 8000 Jogos", Price: price("199.90"), OldPrice: oldPrice("249.90"), Image: "https://images.unsplash.com/photo-1599409636295-e3cf3538f212?q=80&w=300&auto=format&fit=crop", Category: "games-portateis", ShortDescription: "Console com 8000 jogos clássicos e tela LCD de 3 polegadas."},
		{ID: "4", Name: "Carregador Rápido USB-C 25W", Price: price("89.90"), Image: "https://images.unsplash.com/photo-1583863788434-e62bd6bf5ebd?q=80&w=300&auto=format&fit=crop", Category: "carregadores", ShortDescription: "Carregador rápido para smartphones e tablets compatíveis com USB-C."},
		{ID: "5", Name: "Cabo USB-C para Lightning Premium", Price: price("59.90"), OldPrice: oldPrice("79.90"), Image: "https://images.unsplash.com/photo-1601784551446-20c9e07cdbdb?q=80&w=300&auto=format&fit=crop", Category: "cabos-usb", ShortDescription: "Cabo reforçado de 2 metros para carregamento rápido e transferência de dados."},
		{ID: "6", Name: "Fone de Ouvido Gamer Pro", Price: price("349.90"), Image: "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?q=80&w=300&auto=format&fit=crop", Category: "fones-de-ouvido", ShortDescription: "Fone com microfone destacável e áudio surround 7.1 para gamers."},
		{ID: "7", Name: "Joystick para Xbox Series X", Price: price("449.90"), Image: "https://images.unsplash.com/photo-1600080972464-8e5f35f63d08?q=80&w=300&auto=format&fit=crop", Category: "joysticks", ShortDescription: "Controle sem fio com bateria recarregável e conexão via Bluetooth."},
		{ID: "8", Name: "Cabo HDMI 2.1 Ultra HD 8K", Price: price("79.90"), Image: "https://images.unsplash.com/photo-1629131726692-8cb3b8e277da?q=80&w=300&auto=format&fit=crop", Category: "cabos-usb", ShortDescription: "Cabo HDMI de alta velocidade compatível com resoluções até 8K."},
		{ID: "9", Name: "Carregador Sem Fio Magnético 15W", Price: price("149.90"), OldPrice: oldPrice("199.90"), Image: "https://images.unsplash.com/photo-1622643944006-1ebe6d07cbfa?q=80&w=300&auto=format&fit=crop", Category: "carregadores", ShortDescription: "Carregador sem fio magnético com suporte para smartphones compatíveis."},
		{ID: "10", Name: "Game Portátil Retrô Arcade", Price: price("129.90"), Image: "https://images.unsplash.com/photo-1551103782-8ab07afd45c1?q=80&w=300&auto=format&fit=crop", Category: "games-portateis", ShortDescription: "Mini console portátil com 200 jogos clássicos de arcade."},
		{ID: "11", Name: "Fone de Ouvido TWS com Case", Price: price("179.90"), Image: "https://images.unsplash.com/photo-1606220945770-b5b6c2c55bf1?q=80&w=300&auto=format&fit=crop", Category: "fones-de-ouvido", ShortDescription: "Fones de ouvido sem fio verdadeiros com case de carregamento e resistência à água."},
		{ID: "12", Name: "Controle Universal para Smart TV", Price: price("69.90"), Image: "https://images.unsplash.com/photo-1636138389529-a8f63bf36aa0?q=80&w=300&auto=format&fit=crop", Category: "joysticks", ShortDescription: "Controle remoto compatível com todas as marcas de Smart TV."},
		{ID: "13", Name: "Console de Mão Android Gaming", Price: price("499.90"), Image: "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?q=80&w=300&auto=format&fit=crop", Category: "games-portateis", ShortDescription: "Console portátil com sistema Android para jogos mobile e emuladores."},
		{ID: "14", Name: "Hub USB-C 8 em 1", Price: price("199.90"), OldPrice: oldPrice("249.90"), Image: "https://images.unsplash.com/photo-1618759287629-ca85f799b319?q=80&w=300&auto=format&fit=crop", Category: "cabos-usb", ShortDescription: "Hub USB-C com HDMI, Ethernet, leitor de cartões e portas USB 3.0."},
		{ID: "15", Name: "Powerbank 20000mAh 65W", Price: price("279.90"), Image: "https://images.unsplash.com/photo-1609592434539-44c04e444e2c?q=80&w=300&auto=format&fit=crop", Category: "carregadores", ShortDescription: "Bateria externa de alta capacidade com carregamento rápido para notebooks e smartphones."},
	}
}
