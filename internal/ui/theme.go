package ui

// Theme modes are light, dark and system; the stored value is shared with
// the appearance settings select (#theme-mode).
const themeInitScript = `(function(){
  var root=document.documentElement;
  var media=window.matchMedia('(prefers-color-scheme: dark)');
  function normalize(mode){
    return mode==='light'||mode==='dark'||mode==='system'?mode:'system';
  }
  function apply(mode){
    var selected=normalize(mode);
    var resolved=selected==='system'?(media.matches?'dark':'light'):selected;
    root.setAttribute('data-color-mode',selected==='system'?'auto':selected);
    root.setAttribute('data-light-theme',resolved);
    root.setAttribute('data-dark-theme','dark');
    root.setAttribute('data-portal-theme',selected);
  }
  var stored='system';
  try {
    stored=normalize(localStorage.getItem('portal-theme')||'system');
  } catch (_) {}
  apply(stored);
  window.__portalThemeApply=apply;
})();`

const themeBehaviorScript = `(function(){
  var root=document.documentElement;
  var media=window.matchMedia('(prefers-color-scheme: dark)');
  var apply=window.__portalThemeApply||function(){};

  function selectedMode(){
    return root.getAttribute('data-portal-theme')||'system';
  }

  function resolvedMode(){
    var selected=selectedMode();
    return selected==='system'?(media.matches?'dark':'light'):selected;
  }

  function setMode(mode){
    apply(mode);
    try { localStorage.setItem('portal-theme', mode); } catch (_) {}
    syncThemeToggle();
  }

  function syncThemeToggle(){
    var toggle=document.getElementById('theme-toggle');
    if(!toggle){ return; }
    var isDark=resolvedMode()==='dark';
    var sun=document.getElementById('theme-icon-sun');
    var moon=document.getElementById('theme-icon-moon');
    if(sun){ sun.classList.toggle('is-hidden', isDark); }
    if(moon){ moon.classList.toggle('is-hidden', !isDark); }
    var label=isDark?'Switch to light theme':'Switch to dark theme';
    toggle.setAttribute('aria-label', label);
    toggle.setAttribute('title', label);
  }

  var select=document.getElementById('theme-mode');
  if(select){
    select.value=selectedMode();
    select.addEventListener('change',function(e){
      setMode(e.target&&e.target.value?e.target.value:'system');
    });
  }

  var toggle=document.getElementById('theme-toggle');
  if(toggle){
    toggle.addEventListener('click', function(){
      setMode(resolvedMode()==='dark'?'light':'dark');
    });
  }

  syncThemeToggle();

  var onSystemThemeChange=function(){
    if(selectedMode()==='system'){
      apply('system');
      syncThemeToggle();
    }
  };
  if(media.addEventListener){
    media.addEventListener('change', onSystemThemeChange);
  } else if(media.addListener){
    media.addListener(onSystemThemeChange);
  }
})();`

// shellBehaviorScript mirrors nav.Model in the browser: the sidebar toggle
// flips the width and rewrites the portal_sidebar cookie; the drawer closes
// on Escape, on a press outside it, on the overlay, and when a nav link is
// chosen. Without JavaScript the same controls fall back to plain links
// and the POST /ui/sidebar form.
const shellBehaviorScript = `(function(){
  var shell=document.getElementById('app-shell');
  if(!shell){ return; }
  var navToggle=document.getElementById('nav-toggle');
  var navClose=document.getElementById('nav-close');
  var sidebarToggle=document.getElementById('sidebar-toggle');
  var overlay=document.getElementById('app-overlay');
  var sidebar=document.getElementById('app-sidebar');
  var expandedWidth=shell.getAttribute('data-expanded-width')||'261';
  var collapsedWidth=shell.getAttribute('data-collapsed-width')||'64';

  function isOpen(){ return shell.classList.contains('nav-open'); }

  function setDrawer(open){
    shell.classList.toggle('nav-open', !!open);
    if(navToggle){ navToggle.setAttribute('aria-expanded', open ? 'true' : 'false'); }
    if(overlay){ overlay.setAttribute('aria-hidden', open ? 'false' : 'true'); }
  }

  function setExpanded(expanded){
    shell.classList.toggle('sidebar-expanded', expanded);
    shell.classList.toggle('sidebar-collapsed', !expanded);
    shell.style.setProperty('--sidebar-width', (expanded ? expandedWidth : collapsedWidth)+'px');
    document.cookie='portal_sidebar='+(expanded ? '1' : '0')+'; path=/; max-age=31536000; samesite=lax';
    if(sidebarToggle){
      var label=expanded ? 'Collapse sidebar' : 'Expand sidebar';
      sidebarToggle.setAttribute('aria-label', label);
      sidebarToggle.setAttribute('title', label);
      sidebarToggle.setAttribute('aria-pressed', expanded ? 'false' : 'true');
    }
  }

  if(sidebarToggle){
    sidebarToggle.addEventListener('click', function(e){
      e.preventDefault();
      setExpanded(!shell.classList.contains('sidebar-expanded'));
    });
  }

  if(navToggle){
    navToggle.addEventListener('click', function(e){
      e.preventDefault();
      setDrawer(!isOpen());
    });
  }

  [overlay, navClose].forEach(function(el){
    if(!el){ return; }
    el.addEventListener('click', function(e){
      e.preventDefault();
      setDrawer(false);
    });
  });

  document.addEventListener('keydown', function(e){
    if(e.key==='Escape' && isOpen()){ setDrawer(false); }
  });

  document.addEventListener('pointerdown', function(e){
    if(!isOpen() || !sidebar){ return; }
    var t=e.target;
    if(!(t instanceof Element)){ return; }
    if(sidebar.contains(t) || (navToggle && navToggle.contains(t))){ return; }
    setDrawer(false);
  });

  if(sidebar){
    sidebar.addEventListener('click', function(e){
      var t=e.target;
      if(!(t instanceof Element)){ return; }
      if(t.closest('a.app-nav-link')){ setDrawer(false); }
    });
  }

  setDrawer(isOpen());
})();`
